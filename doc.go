// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package eve is a container for the EVE graphics controller driver and its
// companions.
//
// The driver itself is in ft81x, the display list encoders in ft81x/dl. The
// bridge package opens the chip over an FTDI USB bridge or a native SPI port
// and cmd/evedemo shows what it can do.
package eve
