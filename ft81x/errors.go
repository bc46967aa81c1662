// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDetected is returned by New when the bus works but no chip
	// answered within the polling budget.
	ErrNotDetected = errors.New("ft81x: chip not detected")
	// ErrTimeout is returned when the coprocessor did not make progress before
	// the deadline. It is joined with the context error that ended the wait.
	ErrTimeout = errors.New("ft81x: timed out waiting for the coprocessor")
	// ErrFault is returned by WaitFreeSpace when the coprocessor reports the
	// fault sentinel. WaitIdle recovers from it.
	ErrFault = errors.New("ft81x: coprocessor fault")
	// ErrUnknownPanel is returned by New when Opts.Panel is not set.
	ErrUnknownPanel = errors.New("ft81x: unknown panel")
)

// FlashStatusError is returned by the flash helpers when REG_FLASH_STATUS
// does not report the state the command should have reached.
type FlashStatusError struct {
	Want uint8
	Got  uint8
}

func (e *FlashStatusError) Error() string {
	return fmt.Sprintf("ft81x: flash status %d, expected %d", e.Got, e.Want)
}

// Fault describes a coprocessor fault that was recovered from.
type Fault struct {
	// Message is the diagnostic string the coprocessor left in RAM_ERR_REPORT.
	// It is empty on parts that do not report one.
	Message string
	// PatchPtr is the REG_COPRO_PATCH_PTR value preserved across the reset.
	PatchPtr uint32
}

func (f *Fault) String() string {
	if f.Message == "" {
		return "coprocessor fault"
	}
	return "coprocessor fault: " + f.Message
}
