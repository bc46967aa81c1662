// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// flashChip answers flash commands by moving REG_FLASH_STATUS to status.
func flashChip(status uint8) *fakeChip {
	c := newFakeChip()
	c.onWrite = func(c *fakeChip, addr uint32, data []byte) {
		if addr == RegCmdWrite {
			c.put8(RegFlashStatus, status)
			drain(c, addr, data)
		}
	}
	return c
}

func TestFlash(t *testing.T) {
	data := []struct {
		name   string
		f      func(d *Dev, ctx context.Context) error
		status uint8
		words  []uint32
	}{
		{"attach", (*Dev).FlashAttach, FlashStatusBasic, []uint32{CmdFlashAttach}},
		{"detach", (*Dev).FlashDetach, FlashStatusDetached, []uint32{CmdFlashDetach}},
		{"fast", (*Dev).FlashFast, FlashStatusFull, []uint32{CmdFlashFast, 0}},
		{"erase", (*Dev).FlashErase, FlashStatusBasic, []uint32{CmdFlashErase}},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			c := flashChip(line.status)
			d := newTestDev(c, nil)
			if err := line.f(d, context.Background()); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(ringWords(c), line.words); diff != "" {
				t.Fatalf("difference (-got +want):\n%s", diff)
			}
			s, err := d.FlashStatus()
			if err != nil || s != line.status {
				t.Fatalf("FlashStatus() = %d, %v", s, err)
			}
		})
	}
}

func TestFlash_WrongStatus(t *testing.T) {
	// No blob in flash: CMD_FLASHFAST leaves it in basic mode.
	c := flashChip(FlashStatusBasic)
	d := newTestDev(c, nil)
	err := d.FlashFast(context.Background())
	var fe *FlashStatusError
	if !errors.As(err, &fe) {
		t.Fatalf("FlashFast() = %v", err)
	}
	if diff := cmp.Diff(fe, &FlashStatusError{Want: FlashStatusFull, Got: FlashStatusBasic}); diff != "" {
		t.Fatalf("difference (-got +want):\n%s", diff)
	}
	if s := fe.Error(); s != "ft81x: flash status 2, expected 3" {
		t.Fatalf("Error() = %q", s)
	}
}
