// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

// goodixGT911 is a command stream configuring the Goodix GT911 capacitive
// touch controller found on EVE2 boards (BRT AN_336). It holds a CMD_MEMWRITE
// and a CMD_INFLATE of the touch engine patch followed by the register writes
// that select it, and is replayed as is through the command ring.
var goodixGT911 = []byte{
	0x1a, 0xff, 0xff, 0xff, 0x20, 0x20, 0x30, 0x00, 0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
	0x22, 0xff, 0xff, 0xff, 0x00, 0xb0, 0x30, 0x00, 0x78, 0xda, 0xed, 0x54, 0xdd, 0x6f, 0x54, 0x45,
	0x14, 0x3f, 0x33, 0xb3, 0x5d, 0xa0, 0x94, 0x65, 0x6f, 0x4c, 0x05, 0x2c, 0x8d, 0x7b, 0x6f, 0xa1,
	0x0b, 0xdb, 0x9a, 0x10, 0x09, 0x10, 0x11, 0xe5, 0x9c, 0x4b, 0x1a, 0x0b, 0x0d, 0x15, 0xe3, 0x03,
	0x10, 0xfc, 0xb8, 0xb3, 0x2d, 0xdb, 0x8f, 0x2d, 0x29, 0x7d, 0x90, 0x48, 0x43, 0x64, 0x96, 0x47,
	0xbd, 0x71, 0x12, 0x24, 0x11, 0xa5, 0x64, 0xa5, 0xc6, 0x10, 0x20, 0x11, 0x95, 0xc4, 0xf0, 0x80,
	0xa1, 0x10, 0xa4, 0x26, 0x36, 0xf0, 0x00, 0xd1, 0x48, 0x82, 0x0f, 0x26, 0x7d, 0x30, 0x42, 0x52,
	0x1e, 0x4c, 0x13, 0x1f, 0xac, 0x67, 0x2e, 0x8b, 0x18, 0xff, 0x04, 0xe3, 0x9d, 0xcc, 0x9c, 0x33,
	0x73, 0x66, 0xce, 0xe7, 0xef, 0xdc, 0x05, 0xaa, 0x5e, 0x81, 0x89, 0x4b, 0xc2, 0xd8, 0x62, 0x5e,
	0x67, 0x75, 0x73, 0x79, 0x4c, 0x83, 0xb1, 0x7d, 0x59, 0x7d, 0x52, 0x7b, 0x3c, 0xf3, 0x3a, 0x8e,
	0xf2, 0xcc, 0xb9, 0xf3, 0xbc, 0x76, 0x9c, 0xe3, 0x9b, 0xcb, 0xee, 0xee, 0xc3, 0xfb, 0xcd, 0xe5,
	0x47, 0x5c, 0x1c, 0xa9, 0xbe, 0xb8, 0x54, 0x8f, 0x71, 0x89, 0x35, 0xf4, 0x67, 0xb5, 0xed, 0x57,
	0xfd, 0x71, 0x89, 0xe9, 0x30, 0x0c, 0xc6, 0xa5, 0xb5, 0x68, 0x8b, 0x19, 0x54, 0xfd, 0x9b, 0x72,
	0x4a, 0xbf, 0x00, 0x36, 0x8a, 0xa3, 0x0c, 0x3e, 0x83, 0xcf, 0x81, 0x17, 0xd9, 0x22, 0x5b, 0x1f,
	0x80, 0x41, 0xf6, 0xa3, 0xaf, 0xd5, 0x08, 0x93, 0xd5, 0x6b, 0x23, 0xcb, 0x5e, 0x6c, 0x03, 0x6f,
	0x28, 0xab, 0x53, 0x18, 0x0f, 0xa5, 0xb1, 0xde, 0x74, 0x61, 0x17, 0xbc, 0x8c, 0xce, 0x96, 0x2a,
	0x66, 0xb5, 0x57, 0x4e, 0x56, 0xb6, 0xaa, 0x86, 0xd7, 0xf1, 0x79, 0x1a, 0xf3, 0xfc, 0x02, 0x4c,
	0x73, 0xd9, 0x8b, 0xde, 0xce, 0xad, 0x88, 0x84, 0x51, 0x3d, 0x23, 0xb9, 0x27, 0x71, 0x17, 0x2e,
	0xc7, 0x4c, 0xb2, 0x36, 0x97, 0xb7, 0xe0, 0x00, 0x28, 0xbd, 0x1c, 0x95, 0xb6, 0x3a, 0x83, 0x4f,
	0x98, 0x1e, 0x4c, 0x22, 0x62, 0xea, 0xa2, 0xd8, 0x85, 0x8d, 0x66, 0x27, 0xaa, 0x28, 0xc0, 0x65,
	0x35, 0xc9, 0x92, 0xbf, 0x25, 0x4d, 0x2c, 0xb1, 0xd1, 0x4a, 0xd3, 0x05, 0xce, 0xbb, 0x05, 0x06,
	0xd8, 0x2f, 0x35, 0x60, 0x7b, 0x16, 0x32, 0x67, 0xfb, 0xc0, 0x54, 0x11, 0x4a, 0xe3, 0xb9, 0x38,
	0x6a, 0x33, 0x5b, 0xa1, 0x60, 0xb6, 0xa3, 0x30, 0xab, 0x8d, 0x8b, 0x41, 0x98, 0x42, 0x42, 0x0b,
	0x66, 0x2b, 0x9e, 0x4b, 0x24, 0x50, 0x93, 0xb8, 0x93, 0x8b, 0x70, 0x11, 0xeb, 0xd8, 0x67, 0x6f,
	0xef, 0xf5, 0x5c, 0x0a, 0xaf, 0xc2, 0x28, 0x2c, 0x3a, 0x7d, 0x05, 0x3b, 0x70, 0x32, 0x67, 0xf5,
	0x04, 0x4e, 0xc0, 0x05, 0x9c, 0xc2, 0x33, 0x3c, 0xbf, 0x86, 0x4b, 0x6e, 0xad, 0xed, 0x2e, 0xc0,
	0x79, 0x9c, 0xc0, 0x73, 0xb8, 0xda, 0x78, 0x43, 0x3f, 0x73, 0x2e, 0x0b, 0x66, 0x0a, 0x61, 0xe8,
	0x32, 0xeb, 0x72, 0xb6, 0x94, 0x76, 0xb2, 0x29, 0xbc, 0x0c, 0x87, 0x4d, 0xca, 0x7c, 0x0c, 0x60,
	0xee, 0x23, 0xa1, 0xea, 0xbd, 0x81, 0x17, 0xf9, 0xd4, 0x8b, 0xe6, 0x19, 0x35, 0x30, 0xcd, 0x34,
	0x5d, 0xa3, 0x75, 0x35, 0x9a, 0xaa, 0x51, 0x55, 0xa3, 0xb2, 0x46, 0x45, 0x42, 0xa7, 0xf1, 0x0e,
	0x2e, 0xf1, 0x01, 0xe2, 0x88, 0x98, 0xb3, 0xc5, 0x3b, 0xb8, 0x94, 0xfe, 0x31, 0x84, 0x30, 0x0f,
	0xb0, 0x89, 0xc0, 0x4c, 0x83, 0xc4, 0x69, 0x68, 0xa2, 0x56, 0x51, 0xa0, 0xa5, 0xff, 0x1a, 0xad,
	0xa2, 0x89, 0x56, 0x91, 0xd2, 0xb7, 0xc0, 0x37, 0xaf, 0xc2, 0xd3, 0x3c, 0x5b, 0x78, 0xe6, 0xb8,
	0xae, 0x1b, 0x29, 0x83, 0x9b, 0x28, 0xe0, 0x1d, 0x57, 0xb3, 0xe8, 0x10, 0x37, 0x37, 0x07, 0xa5,
	0x93, 0x51, 0x17, 0xa5, 0x31, 0x65, 0x36, 0xe0, 0x4b, 0xb4, 0x51, 0x6c, 0x12, 0x1d, 0xe2, 0x45,
	0xe1, 0x6e, 0xaf, 0xe0, 0x2a, 0xd4, 0x19, 0x2f, 0x82, 0xc1, 0x6e, 0xea, 0xc0, 0xd7, 0xfc, 0x38,
	0x4a, 0xa2, 0x18, 0x2e, 0xfb, 0xae, 0x36, 0x6a, 0x44, 0xf5, 0x0e, 0x09, 0x9b, 0xa0, 0x16, 0x78,
	0xcf, 0x68, 0xf0, 0x1d, 0x5a, 0xb2, 0x8c, 0x1c, 0x18, 0xdc, 0x2f, 0xa6, 0x70, 0x3d, 0xfb, 0xd0,
	0xc0, 0x6f, 0x38, 0xef, 0xee, 0x5d, 0xff, 0xfb, 0x3e, 0x63, 0x20, 0xc1, 0x4b, 0x3d, 0xbe, 0xeb,
	0x7b, 0xe5, 0x6e, 0xda, 0xc2, 0x55, 0x4f, 0xe1, 0x3b, 0x62, 0x14, 0xee, 0xe3, 0xeb, 0xdc, 0x0b,
	0xdd, 0x95, 0x19, 0xb4, 0x74, 0xc2, 0x9f, 0x6f, 0x60, 0xc0, 0x18, 0xd5, 0x3b, 0x8b, 0xb3, 0x9c,
	0xd7, 0x45, 0xe6, 0x13, 0x18, 0x23, 0x87, 0x75, 0xce, 0xab, 0xce, 0xa2, 0x43, 0x81, 0xea, 0x3d,
	0xeb, 0x0b, 0x68, 0x67, 0x54, 0x40, 0xdf, 0xa7, 0xfe, 0x28, 0xa3, 0x65, 0x5c, 0x54, 0x2b, 0x96,
	0x2e, 0xf9, 0xdb, 0xcd, 0x07, 0x74, 0x0b, 0x5b, 0x68, 0x3d, 0x39, 0x4b, 0xdf, 0x08, 0x30, 0x19,
	0x1c, 0x77, 0xfc, 0xde, 0x71, 0x31, 0x56, 0xf9, 0x4a, 0xb4, 0xd3, 0x9c, 0xb5, 0x3d, 0xd7, 0xa8,
	0x9d, 0x07, 0xfb, 0xc7, 0x96, 0xf2, 0xfa, 0x5b, 0x3a, 0x84, 0x5e, 0x79, 0x07, 0x35, 0x97, 0x8b,
	0x62, 0x06, 0xa5, 0x99, 0x45, 0xd6, 0x20, 0x6e, 0xd3, 0x64, 0x65, 0x1f, 0x59, 0x2d, 0x51, 0x62,
	0x17, 0xcd, 0xcd, 0xc5, 0xd1, 0x6d, 0xba, 0xc6, 0x23, 0x8d, 0xbf, 0xf9, 0x19, 0x3c, 0x84, 0xdf,
	0x99, 0xfb, 0x62, 0x14, 0xef, 0x92, 0x8b, 0x14, 0xd9, 0xfa, 0x29, 0xfa, 0x89, 0x3a, 0xb1, 0x5a,
	0x39, 0x4f, 0x33, 0x6c, 0xe9, 0x14, 0xfd, 0xc2, 0xbb, 0x31, 0xde, 0xcd, 0x72, 0x8d, 0x60, 0x30,
	0xaf, 0xdb, 0x6b, 0x36, 0x6f, 0x8a, 0x16, 0x9a, 0x67, 0x6c, 0x4f, 0x3a, 0xfc, 0xb3, 0xb2, 0x4f,
	0xa4, 0xc3, 0x02, 0x99, 0x24, 0x27, 0xaa, 0xc7, 0xc9, 0xa7, 0xc5, 0x55, 0x6a, 0x08, 0x3b, 0xb1,
	0x51, 0x2e, 0x38, 0x02, 0xe6, 0x4b, 0x72, 0x11, 0x37, 0x70, 0xbc, 0x41, 0xd0, 0x89, 0x4d, 0x72,
	0x0a, 0x73, 0x37, 0x3a, 0xd0, 0xc5, 0xad, 0x7a, 0x57, 0x06, 0x8c, 0x6e, 0x2a, 0xd0, 0x7c, 0xa3,
	0x46, 0x6c, 0xf1, 0x68, 0x12, 0xf5, 0x62, 0xd6, 0xbb, 0x86, 0x35, 0x2a, 0xdd, 0x16, 0xb6, 0x85,
	0xd3, 0x74, 0x94, 0xb1, 0xc2, 0xd1, 0xc0, 0x55, 0x5a, 0xc7, 0x3a, 0x37, 0xcb, 0x02, 0xe5, 0x13,
	0x89, 0xbb, 0xa1, 0xe4, 0x9a, 0x70, 0xcb, 0x91, 0x7d, 0xf4, 0xbc, 0xdc, 0x76, 0xe4, 0x29, 0xc9,
	0xb5, 0x29, 0xc3, 0x90, 0xd7, 0xb7, 0x33, 0x50, 0xfa, 0x15, 0xd9, 0x10, 0xd9, 0xc8, 0xeb, 0x6d,
	0xe3, 0xbc, 0x7a, 0xda, 0x8e, 0x3c, 0xaa, 0xe0, 0x70, 0xf0, 0xb8, 0x82, 0xe5, 0xe0, 0x71, 0x05,
	0xdf, 0x94, 0xa3, 0x50, 0xa5, 0xb7, 0x82, 0xbb, 0x84, 0x74, 0x40, 0xee, 0xa1, 0x55, 0xdc, 0x73,
	0x8b, 0xcd, 0x62, 0xe3, 0xf4, 0x1d, 0x66, 0x7d, 0x07, 0x25, 0xf3, 0x7b, 0xdf, 0x0b, 0x1a, 0x5c,
	0x3f, 0xf3, 0x74, 0x3d, 0xbf, 0x8a, 0x7b, 0xf4, 0xa0, 0x54, 0xba, 0x4a, 0x1f, 0x05, 0xae, 0xf7,
	0x77, 0x87, 0xc7, 0xf8, 0xfd, 0x87, 0xf2, 0x61, 0x66, 0x91, 0xbe, 0x90, 0x0e, 0x55, 0xee, 0xdd,
	0xe7, 0xc1, 0x9e, 0x30, 0xcd, 0x19, 0x78, 0xf8, 0x0f, 0xdc, 0x1d, 0x9e, 0x09, 0x46, 0xb9, 0x1e,
	0x67, 0xe5, 0x21, 0xfe, 0x17, 0xed, 0xa0, 0xac, 0x3e, 0xc1, 0x5a, 0xde, 0xe0, 0xe8, 0x0e, 0xc8,
	0x38, 0x5a, 0x68, 0x8e, 0xe3, 0x78, 0x6e, 0x06, 0x15, 0xd3, 0xcb, 0x41, 0x96, 0x63, 0x97, 0xdc,
	0xf7, 0x57, 0xa4, 0x32, 0x9f, 0x31, 0xef, 0xea, 0x3a, 0x8e, 0x00, 0x6d, 0x6c, 0x7b, 0x12, 0x4f,
	0xe3, 0x24, 0x64, 0xf8, 0xde, 0xcd, 0x60, 0x7f, 0x78, 0x1a, 0xab, 0xe4, 0x45, 0x3f, 0x24, 0x11,
	0xfc, 0xc8, 0x11, 0x74, 0xf2, 0xbb, 0xe3, 0x58, 0x8f, 0xf7, 0x02, 0x4b, 0xbf, 0x06, 0x82, 0x3b,
	0xbc, 0x0b, 0x37, 0xf0, 0x1f, 0xf3, 0x7a, 0x98, 0xe2, 0xb7, 0xcf, 0x9a, 0x49, 0xbc, 0x27, 0xdb,
	0x2b, 0x69, 0xde, 0x57, 0x29, 0x8f, 0x8d, 0x8c, 0xaf, 0x49, 0x70, 0xb8, 0xfc, 0x3d, 0xb8, 0x10,
	0x5a, 0xfa, 0x23, 0xa8, 0x52, 0x77, 0xb0, 0x39, 0x74, 0x5e, 0xc8, 0x96, 0x16, 0xbe, 0xb3, 0x2c,
	0x68, 0x0c, 0xeb, 0x54, 0x95, 0x66, 0xfc, 0x59, 0x9a, 0xc1, 0x63, 0xe4, 0x6a, 0xf2, 0x7d, 0xf8,
	0x40, 0xc2, 0xff, 0xdf, 0x7f, 0xf2, 0x53, 0x0b, 0xff, 0x02, 0x46, 0xd6, 0xe2, 0x80, 0x00, 0x00,
	0x1a, 0xff, 0xff, 0xff, 0x14, 0x21, 0x30, 0x00, 0x04, 0x00, 0x00, 0x00, 0x0f, 0x00, 0x00, 0x00,
	0x1a, 0xff, 0xff, 0xff, 0x20, 0x20, 0x30, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// touch70IWG is the touch engine firmware for the 7" 1024x600 panel with the
// WG capacitive touch controller, loaded the same way on EVE4 boards.
var touch70IWG = []byte{
	0x1a, 0xff, 0xff, 0xff, 0x20, 0x20, 0x30, 0x00, 0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
	0x1a, 0xff, 0xff, 0xff, 0x00, 0xb0, 0x30, 0x00, 0x04, 0x00, 0x00, 0x00, 0x52, 0x03, 0x00, 0x00,
	0x22, 0xff, 0xff, 0xff, 0x00, 0xb0, 0x30, 0x00, 0x78, 0xda, 0xb5, 0x53, 0x4f, 0x68, 0x9c, 0x55,
	0x10, 0x9f, 0xb7, 0x6f, 0xb3, 0x9a, 0x44, 0xd6, 0xef, 0x2b, 0xa5, 0x14, 0xc9, 0x07, 0xfb, 0x6d,
	0x36, 0x2e, 0xed, 0xb6, 0x50, 0x4c, 0x44, 0x04, 0x85, 0x79, 0x49, 0x5b, 0xda, 0x84, 0x50, 0xb4,
	0x07, 0x73, 0x10, 0xfa, 0xde, 0xb7, 0x71, 0xff, 0x7d, 0x2b, 0x21, 0x78, 0x11, 0x89, 0x76, 0xaa,
	0x20, 0x1e, 0x3e, 0xf8, 0xf0, 0xd2, 0x7a, 0x30, 0xc5, 0x83, 0xab, 0x48, 0xc0, 0x93, 0x41, 0xa5,
	0x07, 0x05, 0x6b, 0x90, 0x62, 0xc9, 0x41, 0x28, 0x45, 0x08, 0x78, 0x28, 0xa5, 0xa7, 0xe6, 0x92,
	0x22, 0xa8, 0xb0, 0xce, 0x7c, 0xbb, 0x4a, 0xf1, 0x24, 0x62, 0x78, 0xcc, 0x9b, 0x79, 0xf3, 0xde,
	0xfc, 0x79, 0x33, 0xbf, 0x79, 0x51, 0x03, 0x00, 0x25, 0x0d, 0x45, 0x69, 0x54, 0x75, 0x9e, 0x0b,
	0xe2, 0x0f, 0x1d, 0x50, 0xda, 0xf4, 0xdc, 0xba, 0xf3, 0x99, 0xaa, 0x2e, 0xb1, 0x55, 0x96, 0x44,
	0x5f, 0x75, 0x22, 0x89, 0x1c, 0xc4, 0xf2, 0x76, 0xf0, 0x3e, 0x88, 0xff, 0x92, 0x12, 0xab, 0x9b,
	0x49, 0x63, 0x0c, 0x93, 0x06, 0x7b, 0x68, 0x79, 0x2e, 0x6d, 0xe9, 0x56, 0xd2, 0x60, 0xbe, 0x02,
	0x9d, 0xa4, 0x31, 0x8d, 0x69, 0x54, 0x44, 0xdd, 0x7a, 0xae, 0xa4, 0xdd, 0xf3, 0x90, 0xda, 0xc4,
	0x16, 0xf1, 0x38, 0x3e, 0x0b, 0xbe, 0x4d, 0x23, 0x8e, 0xde, 0x86, 0x0e, 0xe7, 0xd1, 0xac, 0x92,
	0x22, 0xcf, 0x4d, 0xdb, 0x94, 0xb3, 0x98, 0x07, 0xbf, 0xeb, 0xb9, 0x3c, 0x26, 0xdd, 0x02, 0x8e,
	0xd3, 0x02, 0x2e, 0xc0, 0x39, 0x94, 0x58, 0x3a, 0xf2, 0x9c, 0x1f, 0x67, 0x3b, 0x47, 0xd5, 0x2b,
	0x4f, 0xb3, 0xbe, 0x80, 0x55, 0xb6, 0x00, 0x0a, 0x62, 0xdf, 0xbe, 0x5e, 0xaa, 0x58, 0x45, 0xba,
	0xbe, 0x5a, 0x3a, 0x84, 0x4b, 0x38, 0x81, 0xc5, 0x6c, 0x0f, 0xe2, 0x39, 0x6c, 0x83, 0x76, 0x13,
	0xa8, 0x5d, 0xea, 0x8a, 0x78, 0x90, 0xea, 0x28, 0x3f, 0x3a, 0xc0, 0x5c, 0x7e, 0xb1, 0x84, 0x87,
	0xe8, 0x25, 0xd4, 0xb6, 0x8c, 0x4f, 0x0c, 0x6f, 0x0e, 0xff, 0x7d, 0x33, 0xc1, 0x37, 0xa9, 0x95,
	0xcc, 0x46, 0x09, 0x38, 0x27, 0xdd, 0x4e, 0xeb, 0x8f, 0xb1, 0x94, 0x36, 0x81, 0xd6, 0x11, 0x1a,
	0x1f, 0x95, 0x12, 0x0b, 0x34, 0x46, 0x7e, 0xf7, 0xd3, 0x92, 0xe4, 0xee, 0xdb, 0x2f, 0x4a, 0xf8,
	0x6e, 0x0f, 0x4f, 0xe1, 0xe7, 0xfc, 0x5b, 0xe8, 0x6c, 0x40, 0xea, 0x7a, 0xd8, 0x83, 0x63, 0x74,
	0x16, 0x6a, 0xb4, 0x88, 0x8a, 0x8e, 0xd2, 0xb4, 0xd5, 0xee, 0x28, 0x5b, 0x8c, 0xe1, 0xf7, 0xa5,
	0x1e, 0x7e, 0xcb, 0x2f, 0x14, 0xd5, 0x48, 0xac, 0x6b, 0x74, 0x16, 0xaf, 0x65, 0xef, 0x20, 0x7b,
	0x37, 0xd0, 0x6c, 0xc3, 0x36, 0x7b, 0xb8, 0x81, 0x9b, 0xf8, 0x35, 0xd3, 0x4d, 0xf8, 0x49, 0xf6,
	0xe1, 0xe9, 0x06, 0x6c, 0x61, 0x0f, 0xaf, 0xa1, 0xf8, 0xbb, 0xc7, 0x11, 0x6b, 0xb4, 0x89, 0xd0,
	0xbd, 0xc5, 0x16, 0xb5, 0x2c, 0x8e, 0xdc, 0x6d, 0xe2, 0x2d, 0xb8, 0x48, 0x79, 0xfa, 0x80, 0xfb,
	0xfd, 0x2b, 0x1a, 0xd4, 0xcb, 0xb7, 0x71, 0x9b, 0xb5, 0xbe, 0x7d, 0x84, 0x74, 0x7b, 0x97, 0x79,
	0x61, 0xc8, 0x47, 0x86, 0x3c, 0x3f, 0xe4, 0x7a, 0xc8, 0x73, 0x43, 0xae, 0x32, 0xbe, 0x8b, 0x77,
	0x30, 0x0c, 0x01, 0x12, 0x6b, 0x58, 0x4a, 0xa3, 0x3b, 0x58, 0x36, 0x0f, 0x2d, 0xa5, 0xe8, 0x77,
	0x9c, 0x32, 0x40, 0xbb, 0x90, 0xc3, 0x5d, 0x98, 0x32, 0x27, 0xd4, 0x8c, 0x29, 0xff, 0x63, 0x9d,
	0x50, 0x53, 0xe6, 0x29, 0xa3, 0xdd, 0x0e, 0x94, 0xe9, 0x3c, 0x94, 0x98, 0x2a, 0x4c, 0x21, 0xf7,
	0xfa, 0xa4, 0x29, 0xe2, 0x69, 0x33, 0xc9, 0xa7, 0x1c, 0xe6, 0xb0, 0xdf, 0x87, 0x86, 0x6f, 0xfb,
	0xfd, 0xc4, 0x72, 0xbf, 0x23, 0xc1, 0xa4, 0x68, 0xd6, 0xed, 0xcb, 0xa6, 0x80, 0x79, 0x7a, 0x06,
	0x97, 0xcc, 0x49, 0x75, 0x5a, 0x9d, 0x53, 0x67, 0x94, 0xd8, 0x4e, 0xd1, 0x02, 0x8c, 0x90, 0x6f,
	0xa1, 0x73, 0xc1, 0x9c, 0xc2, 0x57, 0xc3, 0xc4, 0x66, 0x7f, 0x5a, 0x59, 0x0b, 0xa5, 0x83, 0x7a,
	0x55, 0x2f, 0xbf, 0xa9, 0x52, 0x27, 0xda, 0x1a, 0xbe, 0x1d, 0x4e, 0xc3, 0x40, 0x2a, 0x60, 0xc5,
	0xbe, 0x65, 0x5e, 0x61, 0x74, 0x04, 0xf1, 0x45, 0xf5, 0x24, 0xfb, 0xf0, 0xed, 0x1c, 0xea, 0xc8,
	0xb7, 0x97, 0xc3, 0x1e, 0x42, 0xe7, 0x7d, 0xb6, 0x39, 0xc6, 0xda, 0xe3, 0x94, 0x74, 0x47, 0x99,
	0x0a, 0x4c, 0xd0, 0x10, 0x9c, 0x71, 0x4d, 0x95, 0x21, 0x41, 0x40, 0x91, 0xae, 0xc2, 0x27, 0xe6,
	0xcb, 0x70, 0x0d, 0x05, 0xb1, 0xd0, 0xf5, 0xdd, 0x6b, 0xa6, 0xea, 0x9c, 0x09, 0x62, 0xc1, 0xef,
	0x77, 0x4a, 0x74, 0x79, 0xc6, 0x56, 0x11, 0xd7, 0xf0, 0x07, 0x9a, 0x1f, 0xea, 0x25, 0x97, 0x8f,
	0xcd, 0x1f, 0xa0, 0xb8, 0x42, 0x33, 0xe6, 0x51, 0xd2, 0xab, 0x69, 0x04, 0x74, 0xdd, 0x6c, 0x99,
	0x1d, 0x46, 0xca, 0x75, 0x25, 0xb2, 0xe7, 0xb6, 0x8c, 0x32, 0x3b, 0x30, 0x4e, 0x8b, 0x1c, 0xe1,
	0x7e, 0x28, 0x9e, 0x80, 0xe7, 0xcc, 0x63, 0xd4, 0x40, 0xfd, 0x6e, 0xe8, 0xbb, 0x0b, 0x66, 0x0e,
	0x65, 0x5a, 0x46, 0x08, 0x9a, 0xbf, 0x84, 0x6f, 0xe0, 0x1e, 0xdb, 0x8d, 0xd3, 0x55, 0xdc, 0x0b,
	0x5f, 0x30, 0xf3, 0xe6, 0x0c, 0x48, 0xc5, 0xf4, 0xf2, 0x11, 0x8e, 0xf7, 0x38, 0xdb, 0x8e, 0xe1,
	0x6f, 0xe1, 0x11, 0x46, 0x98, 0xc8, 0x50, 0xe6, 0x7a, 0xf2, 0x3f, 0x1e, 0x28, 0xb8, 0xf4, 0xc0,
	0x70, 0xdf, 0x67, 0x39, 0x87, 0x76, 0x3e, 0xa7, 0xf8, 0x34, 0x9a, 0xcb, 0x65, 0x3b, 0xd0, 0x15,
	0x73, 0x99, 0x36, 0x38, 0x9f, 0x2b, 0x66, 0xef, 0xd2, 0x06, 0xdc, 0x36, 0x32, 0x6d, 0xb2, 0xb4,
	0xf5, 0xe8, 0x47, 0xce, 0x1b, 0xa8, 0x8a, 0x8b, 0x93, 0x83, 0xfc, 0x67, 0x8c, 0x5e, 0x2e, 0xf0,
	0xcc, 0x69, 0x3b, 0x63, 0x16, 0xe8, 0x1d, 0x23, 0x08, 0x1a, 0x48, 0xe3, 0x2c, 0xe9, 0xa8, 0x9c,
	0xdd, 0x68, 0x77, 0x80, 0x6b, 0x11, 0xc4, 0x59, 0x66, 0xf5, 0xa5, 0xb2, 0x2f, 0xd3, 0xc8, 0x9a,
	0x8a, 0x95, 0xa9, 0xeb, 0x7f, 0x23, 0x95, 0xd5, 0xed, 0x20, 0xfe, 0xcc, 0x88, 0x86, 0x2b, 0x1d,
	0x89, 0xd5, 0x7f, 0xf5, 0xff, 0xde, 0x3e, 0xfb, 0xff, 0x6a, 0x9f, 0xfd, 0xdf, 0xdb, 0x67, 0xff,
	0x87, 0x27, 0xff, 0x7f, 0xff, 0x15, 0xfb, 0x70, 0x84, 0x20, 0xe6, 0x29, 0x6c, 0xe9, 0xfa, 0xe2,
	0xbf, 0x8a, 0x84, 0x6c, 0x2f, 0xeb, 0x67, 0x75, 0x70, 0x76, 0x62, 0x56, 0x31, 0xf6, 0xce, 0xeb,
	0x3f, 0x01, 0x37, 0x61, 0xf7, 0x46, 0x00, 0x00, 0x1a, 0xff, 0xff, 0xff, 0x20, 0x20, 0x30, 0x00,
	0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
