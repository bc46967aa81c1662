// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import "context"

// External flash of the BT81x parts. BT81x Series Programming Guide section
// 5.3. Each helper runs its command to completion.

// FlashAttach attaches the flash and leaves it in basic mode.
func (d *Dev) FlashAttach(ctx context.Context) error {
	return d.flashCommand(ctx, FlashStatusBasic, CmdFlashAttach)
}

// FlashDetach detaches the flash so it can be driven over SPI directly.
func (d *Dev) FlashDetach(ctx context.Context) error {
	return d.flashCommand(ctx, FlashStatusDetached, CmdFlashDetach)
}

// FlashFast switches the flash to full speed mode. It requires the flash to
// hold a valid blob.
func (d *Dev) FlashFast(ctx context.Context) error {
	return d.flashCommand(ctx, FlashStatusFull, CmdFlashFast, 0)
}

// FlashErase erases the whole flash. It can take tens of seconds; ctx and
// Opts.WaitTimeout must allow for it.
func (d *Dev) FlashErase(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.run(ctx, CmdFlashErase)
}

// FlashStatus returns REG_FLASH_STATUS.
func (d *Dev) FlashStatus() (uint8, error) {
	return d.Read8(RegFlashStatus)
}

func (d *Dev) flashCommand(ctx context.Context, want uint8, words ...uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.run(ctx, words...); err != nil {
		return err
	}
	got, err := d.rd8(RegFlashStatus)
	if err != nil {
		return err
	}
	if got != want {
		return &FlashStatusError{Want: want, Got: got}
	}
	return nil
}

// run sends words, commits and waits until they are executed.
func (d *Dev) run(ctx context.Context, words ...uint32) error {
	if err := d.cmd(words...); err != nil {
		return err
	}
	if err := d.commit(); err != nil {
		return err
	}
	return d.waitIdle(ctx)
}
