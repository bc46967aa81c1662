// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bridge connects a host to an EVE graphics controller.
//
// Two transports are supported: an FTDI FT232H USB to SPI bridge, with the
// power down line of the chip on ADBUS7 (D7), and a native SPI port such as
// Linux spidev with the power down line on a GPIO.
//
// # More details
//
// FT232H datasheet
//
// https://ftdichip.com/wp-content/uploads/2020/07/DS_FT232H.pdf
package bridge
