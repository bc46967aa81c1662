// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"bytes"
	"context"
	"errors"
	"log"
)

// The coprocessor command ring. FT81x Series Programmers Guide section 5.1.1.
//
// The ring is plain memory at RAM_CMD. The chip owns REG_CMD_READ and the host
// owns REG_CMD_WRITE; nothing is executed until REG_CMD_WRITE moves. Words are
// written at the host cursor (cmdWrite) and Commit publishes the cursor.

// Cmd appends words to the command ring, one bus transaction per word. The
// words are not executed until Commit is called.
//
// No room check is done; keep the number of words between two Execute calls
// below the ring size, or use CmdBuf for bulk data.
func (d *Dev) Cmd(words ...uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cmd(words...)
}

// Commit publishes the words appended so far, letting the coprocessor start
// on them.
func (d *Dev) Commit() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.commit()
}

// Execute commits the pending words and waits until the coprocessor has
// consumed all of them.
func (d *Dev) Execute(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.commit(); err != nil {
		return err
	}
	return d.waitIdle(ctx)
}

// CmdBuf streams b through the command ring. b can be much larger than the
// ring: data is sent in chunks, waiting for room before each one and
// committing after each one so the coprocessor drains while the next chunk is
// prepared. The last chunk is padded with zeros to a multiple of 4 bytes.
//
// It is typically used for the payload of CMD_INFLATE, CMD_LOADIMAGE or
// CMD_MEMWRITE, or to replay a recorded command stream.
//
// A coprocessor fault while streaming is recovered from as in WaitIdle; the
// rest of b is dropped and nil is returned.
func (d *Dev) CmdBuf(ctx context.Context, b []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cmdBuf(ctx, b)
}

// FreeSpace returns the number of bytes that can be appended to the ring
// without overwriting commands the coprocessor has not read yet.
func (d *Dev) FreeSpace() (uint16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.freeSpace()
}

// WaitFreeSpace polls until at least n bytes are free in the ring.
//
// It returns ErrFault if the coprocessor reports a fault meanwhile; call
// WaitIdle to recover. It returns ErrTimeout if ctx or Opts.WaitTimeout
// expire first.
func (d *Dev) WaitFreeSpace(ctx context.Context, n uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.waitFreeSpace(ctx, n)
}

// WaitIdle polls until the coprocessor has consumed everything committed.
//
// A coprocessor fault is recovered from: the coprocessor is reset, the ring
// pointers are cleared, Opts.OnFault is called and polling resumes. The ring
// is empty afterwards, so whatever was pending is lost and the caller should
// send a fresh display list. A recovered fault is not reported as an error.
//
// It returns ErrTimeout if ctx or Opts.WaitTimeout expire first.
func (d *Dev) WaitIdle(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.waitIdle(ctx)
}

func (d *Dev) cmd(words ...uint32) error {
	for _, w := range words {
		if err := d.wr32(RamCmd+uint32(d.cmdWrite), w); err != nil {
			return err
		}
		d.cmdWrite = (d.cmdWrite + 4) % d.opts.FIFO.Size
	}
	return nil
}

func (d *Dev) commit() error {
	return d.wr16(RegCmdWrite, d.cmdWrite)
}

func (d *Dev) cmdBuf(ctx context.Context, b []byte) error {
	chunk := int(d.opts.FIFO.Chunk)
	for len(b) != 0 {
		if err := d.waitFreeSpace(ctx, d.opts.FIFO.Chunk); err == ErrFault {
			if err := d.recoverFault(true); err != nil {
				return err
			}
			d.bus.Delay(d.opts.FIFO.FaultBackoff)
			// The ring is empty now; the rest of b has no context left.
			return nil
		} else if err != nil {
			return err
		}
		n := len(b)
		p := b
		if n > chunk {
			n = chunk
			p = b[:n]
		} else if n%4 != 0 {
			p = make([]byte, (n+3)&^3)
			copy(p, b)
		}
		if err := d.writeRing(p); err != nil {
			return err
		}
		b = b[n:]
		if err := d.commit(); err != nil {
			return err
		}
	}
	return nil
}

// writeRing writes p at the cursor and advances it. A write crossing the end
// of the ring is split in two transactions.
func (d *Dev) writeRing(p []byte) error {
	size := int(d.opts.FIFO.Size)
	off := int(d.cmdWrite)
	if first := size - off; len(p) > first {
		if err := d.write(RamCmd+uint32(off), p[:first]); err != nil {
			return err
		}
		if err := d.write(RamCmd, p[first:]); err != nil {
			return err
		}
	} else if err := d.write(RamCmd+uint32(off), p); err != nil {
		return err
	}
	d.cmdWrite = uint16((off + len(p)) % size)
	return nil
}

func (d *Dev) freeSpace() (uint16, error) {
	rd, err := d.rd16(RegCmdRead)
	if err != nil {
		return 0, err
	}
	wr, err := d.rd16(RegCmdWrite)
	if err != nil {
		return 0, err
	}
	return freeSpace(rd, wr, d.opts.FIFO.Size, d.opts.FIFO.Reserved), nil
}

// freeSpace returns the room left in a ring of size bytes given the read and
// write offsets. reserved bytes are never handed out so that rd == wr always
// means empty.
func freeSpace(rd, wr, size, reserved uint16) uint16 {
	s := int(size)
	diff := ((int(wr)-int(rd))%s + s) % s
	free := s - int(reserved) - diff
	if free < 0 {
		return 0
	}
	return uint16(free)
}

func (d *Dev) waitFreeSpace(ctx context.Context, n uint16) error {
	ctx, cancel := d.waitContext(ctx)
	defer cancel()
	for {
		rd, err := d.rd16(RegCmdRead)
		if err != nil {
			return err
		}
		if rd == d.opts.FIFO.FaultSentinel {
			return ErrFault
		}
		wr, err := d.rd16(RegCmdWrite)
		if err != nil {
			return err
		}
		if freeSpace(rd, wr, d.opts.FIFO.Size, d.opts.FIFO.Reserved) >= n {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrTimeout, err)
		}
	}
}

func (d *Dev) waitIdle(ctx context.Context) error {
	_, err := d.drain(ctx, true)
	return err
}

// drain polls until the ring is empty, recovering from faults on the way.
// recovered tells whether the ring was reset. Opts.WaitTimeout applies only
// when bounded is set.
func (d *Dev) drain(ctx context.Context, bounded bool) (recovered bool, err error) {
	var cancel context.CancelFunc
	if bounded {
		ctx, cancel = d.waitContext(ctx)
	} else {
		ctx, cancel = userContext(ctx)
	}
	defer cancel()
	for {
		rd, err := d.rd16(RegCmdRead)
		if err != nil {
			return recovered, err
		}
		if rd == d.opts.FIFO.FaultSentinel {
			if err := d.recoverFault(true); err != nil {
				return recovered, err
			}
			recovered = true
			d.bus.Delay(d.opts.FIFO.FaultBackoff)
		} else {
			wr, err := d.rd16(RegCmdWrite)
			if err != nil {
				return recovered, err
			}
			if rd == wr {
				return recovered, nil
			}
		}
		if err := ctx.Err(); err != nil {
			return recovered, errors.Join(ErrTimeout, err)
		}
	}
}

// recoverFault brings a faulted coprocessor back. The patch pointer does not
// survive a coprocessor reset on BT81x, so it is saved and restored around
// it.
func (d *Dev) recoverFault(report bool) error {
	f := &Fault{}
	if report {
		var msg [errReportSize]byte
		if err := d.read(RamErrReport, msg[:]); err != nil {
			return err
		}
		if i := bytes.IndexByte(msg[:], 0); i >= 0 {
			f.Message = string(msg[:i])
		} else {
			f.Message = string(msg[:])
		}
	}
	var err error
	if f.PatchPtr, err = d.rd32(RegCoproPatchPtr); err != nil {
		return err
	}
	seq := []regWrite{
		{addr: RegCPUReset, size: 1, value: uint32(resetCoprocessor)},
		{addr: RegCmdRead, size: 2},
		{addr: RegCmdWrite, size: 2},
		{addr: RegCmdDL, size: 2},
		{addr: RegCPUReset, size: 1},
		{addr: RegCoproPatchPtr, size: 4, value: f.PatchPtr},
	}
	if err := d.apply(seq); err != nil {
		return err
	}
	d.cmdWrite = 0
	log.Printf("ft81x: %s", f)
	if d.opts.OnFault != nil {
		d.opts.OnFault(f)
	}
	return nil
}

// waitContext applies Opts.WaitTimeout to ctx.
func (d *Dev) waitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d.opts.WaitTimeout > 0 {
		return context.WithTimeout(ctx, d.opts.WaitTimeout)
	}
	return context.WithCancel(ctx)
}

// userContext is used for waits on a person, which only the caller bounds.
func userContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithCancel(ctx)
}
