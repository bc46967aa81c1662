// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dl

// Primitive is a graphics primitive, used with Begin.
type Primitive uint8

// Graphics primitives.
const (
	Bitmaps    Primitive = 1
	Points     Primitive = 2
	Lines      Primitive = 3
	LineStrip  Primitive = 4
	EdgeStripR Primitive = 5
	EdgeStripL Primitive = 6
	EdgeStripA Primitive = 7
	EdgeStripB Primitive = 8
	Rects      Primitive = 9
)

// Format is a bitmap pixel format.
type Format uint8

// Bitmap formats.
const (
	ARGB1555     Format = 0
	L1           Format = 1
	L4           Format = 2
	L8           Format = 3
	RGB332       Format = 4
	ARGB2        Format = 5
	ARGB4        Format = 6
	RGB565       Format = 7
	Text8x8      Format = 9
	TextVGA      Format = 10
	Bargraph     Format = 11
	Paletted565  Format = 14
	Paletted4444 Format = 15
	Paletted8    Format = 16
	L2           Format = 17
)

// Bitmap sampling.
const (
	Nearest  = 0
	Bilinear = 1
	Border   = 0
	Repeat   = 1
)

// Coprocessor command options.
const (
	Opt3D         = 0
	OptRGB565     = 0
	OptLeftX      = 0
	OptMono       = 1
	OptNoDL       = 2
	OptNoTear     = 4
	OptFullscreen = 8
	OptMediaFIFO  = 16
	OptSound      = 32
	OptFlash      = 64
	OptFlat       = 256
	OptSigned     = 256
	OptCenterX    = 512
	OptCenterY    = 1024
	OptCenter     = 1536
	OptRightX     = 2048
	OptNoBack     = 4096
	OptNoTicks    = 8192
	OptNoHM       = 16384
	OptNoPointer  = 16384
	OptNoSecs     = 32768
	OptNoHands    = 49152
)

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Display ends the display list.
func Display() uint32 {
	return 0
}

// Clear clears the color, stencil and tag buffers as selected.
func Clear(color, stencil, tag bool) uint32 {
	return 38<<24 | b2u(color)<<2 | b2u(stencil)<<1 | b2u(tag)
}

// ClearColorRGB sets the color Clear uses.
func ClearColorRGB(r, g, b uint8) uint32 {
	return 2<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ClearColorA sets the alpha Clear uses.
func ClearColorA(a uint8) uint32 {
	return 15<<24 | uint32(a)
}

// ClearTag sets the tag Clear uses.
func ClearTag(t uint8) uint32 {
	return 18<<24 | uint32(t)
}

// ColorRGB sets the current color.
func ColorRGB(r, g, b uint8) uint32 {
	return 4<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ColorA sets the current alpha.
func ColorA(a uint8) uint32 {
	return 16<<24 | uint32(a)
}

// Begin starts drawing primitive p.
func Begin(p Primitive) uint32 {
	return 31<<24 | uint32(p)&15
}

// End ends the primitive started by Begin.
func End() uint32 {
	return 33 << 24
}

// Vertex2II places a vertex at integer coordinates, using bitmap handle and
// cell when drawing bitmaps. x and y are limited to 0..511.
func Vertex2II(x, y uint16, handle, cell uint8) uint32 {
	return 2<<30 | (uint32(x)&511)<<21 | (uint32(y)&511)<<12 | (uint32(handle)&31)<<7 | uint32(cell)&127
}

// Vertex2F places a vertex at x, y in the units set by VertexFormat, 1/16
// pixel by default.
func Vertex2F(x, y int16) uint32 {
	return 1<<30 | (uint32(x)&32767)<<15 | uint32(y)&32767
}

// VertexFormat sets the number of fractional bits of Vertex2F coordinates.
func VertexFormat(frac uint8) uint32 {
	return 39<<24 | uint32(frac)&7
}

// VertexTranslateX offsets the X coordinates, in 1/16 pixel.
func VertexTranslateX(x int32) uint32 {
	return 43<<24 | uint32(x)&0x1FFFF
}

// VertexTranslateY offsets the Y coordinates, in 1/16 pixel.
func VertexTranslateY(y int32) uint32 {
	return 44<<24 | uint32(y)&0x1FFFF
}

// PointSize sets the radius of points in 1/16 pixel.
func PointSize(size uint16) uint32 {
	return 13<<24 | uint32(size)&8191
}

// LineWidth sets the width of lines in 1/16 pixel.
func LineWidth(width uint16) uint32 {
	return 14<<24 | uint32(width)&4095
}

// Tag sets the tag value assigned to touched pixels of what follows.
func Tag(t uint8) uint32 {
	return 3<<24 | uint32(t)
}

// TagMask enables writes to the tag buffer.
func TagMask(enable bool) uint32 {
	return 20<<24 | b2u(enable)
}

// Cell selects the bitmap cell.
func Cell(cell uint8) uint32 {
	return 6<<24 | uint32(cell)&127
}

// BitmapHandle selects the bitmap handle the Bitmap* instructions configure.
func BitmapHandle(handle uint8) uint32 {
	return 5<<24 | uint32(handle)&31
}

// BitmapSource sets the RAM_G address of the bitmap.
func BitmapSource(addr uint32) uint32 {
	return 1<<24 | addr&0x3FFFFF
}

// BitmapLayout sets the format, line stride in bytes and height of the
// bitmap. The low bits only; see BitmapLayoutH.
func BitmapLayout(f Format, stride, height uint16) uint32 {
	return 7<<24 | (uint32(f)&31)<<19 | (uint32(stride)&1023)<<9 | uint32(height)&511
}

// BitmapLayoutH holds the high bits of the stride and height of BitmapLayout.
func BitmapLayoutH(stride, height uint16) uint32 {
	return 40<<24 | (uint32(stride)>>10&3)<<2 | uint32(height)>>9&3
}

// BitmapSize sets the drawn size of the bitmap and how it is sampled. The
// low bits only; see BitmapSizeH.
func BitmapSize(filter, wrapX, wrapY uint8, width, height uint16) uint32 {
	return 8<<24 | (uint32(filter)&1)<<20 | (uint32(wrapX)&1)<<19 | (uint32(wrapY)&1)<<18 | (uint32(width)&511)<<9 | uint32(height)&511
}

// BitmapSizeH holds the high bits of the width and height of BitmapSize.
func BitmapSizeH(width, height uint16) uint32 {
	return 41<<24 | (uint32(width)>>9&3)<<2 | uint32(height)>>9&3
}

// ScissorXY sets the top left corner of the drawing clip rectangle.
func ScissorXY(x, y uint16) uint32 {
	return 27<<24 | (uint32(x)&2047)<<11 | uint32(y)&2047
}

// ScissorSize sets the size of the drawing clip rectangle.
func ScissorSize(w, h uint16) uint32 {
	return 28<<24 | (uint32(w)&4095)<<12 | uint32(h)&4095
}

// SaveContext pushes the graphics context.
func SaveContext() uint32 {
	return 34 << 24
}

// RestoreContext pops the graphics context.
func RestoreContext() uint32 {
	return 35 << 24
}
