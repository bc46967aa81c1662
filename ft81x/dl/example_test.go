// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dl_test

import (
	"fmt"

	"github.com/GermanBionicSystems/eve/ft81x/dl"
)

func Example() {
	// A red dot of 20 pixels radius in the middle of a 480x272 screen.
	list := []uint32{
		dl.ClearColorRGB(0, 0, 0),
		dl.Clear(true, true, true),
		dl.ColorRGB(255, 0, 0),
		dl.PointSize(20 * 16),
		dl.Begin(dl.Points),
		dl.Vertex2F(240*16, 136*16),
		dl.End(),
		dl.Display(),
	}
	for _, w := range list {
		fmt.Printf("%08x\n", w)
	}
	// Output:
	// 02000000
	// 26000007
	// 04ff0000
	// 0d000140
	// 1f000002
	// 47800880
	// 21000000
	// 00000000
}
