// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ft81x controls the FTDI/Bridgetek EVE graphics controllers:
// FT812, FT813, BT815, BT816, BT817 and BT818, as found on the Matrix
// Orbital EVE2, EVE3 and EVE4 display modules.
//
// The controller renders a display list of 32 bit instructions every frame.
// Display lists are built either by writing RAM_DL directly or, more
// commonly, by the coprocessor which executes widget commands (text,
// buttons, gauges) streamed into a 4KiB command ring. Dev.Cmd appends words
// to the ring, Dev.Commit hands them over and Dev.WaitIdle waits until they
// are executed. Dev.CmdBuf streams arbitrary amounts of data, for example
// compressed images, through the ring.
//
// The coprocessor stops on invalid commands. Dev.WaitIdle recovers from
// this: it resets the coprocessor, empties the ring, logs the fault and
// calls Opts.OnFault. Pending commands are lost.
//
// The display list instructions are encoded by package dl.
//
// # Datasheets
//
// https://brtchip.com/wp-content/uploads/Support/Documentation/Datasheets/ICs/EVE/DS_FT81x.pdf
//
// https://brtchip.com/wp-content/uploads/Support/Documentation/Programming_Guides/ICs/EVE/FT81X_Series_Programmer_Guide.pdf
//
// https://brtchip.com/wp-content/uploads/Support/Documentation/Programming_Guides/ICs/EVE/BRT_AN_033_BT81X_Series_Programming_Guide.pdf
//
// # Product page
//
// https://www.matrixorbital.com/ftdi-eve
package ft81x
