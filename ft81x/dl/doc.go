// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dl encodes FT81x/BT81x display list instructions.
//
// Each function returns the 32 bit instruction word; the words are either
// written to RAM_DL directly or sent through the coprocessor with
// ft81x.Dev.Cmd, which copies them to the display list it is building.
// Out of range arguments are masked to the width of their field.
//
// Datasheet
//
// FT81X Series Programmers Guide, chapter 4.
//
// https://brtchip.com/wp-content/uploads/Support/Documentation/Programming_Guides/ICs/EVE/FT81X_Series_Programmer_Guide.pdf
package dl
