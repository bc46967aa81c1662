// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package st7789v initializes the ST7789V controller of 2.4" RGB panels
// driven by an FT81x/BT81x graphics controller.
//
// The panel is fed pixels over the parallel RGB interface of the graphics
// controller, but its own configuration has to be written over a 3-wire 9
// bit serial interface. On the Matrix Orbital EVE boards that interface is
// wired to the GPIOX expander of the graphics controller, so it is bit banged
// through register writes.
//
// Datasheet
//
// https://www.rhydolabz.com/documents/33/ST7789.pdf
package st7789v
