// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFreeSpace(t *testing.T) {
	data := []struct {
		rd, wr uint16
		want   uint16
	}{
		{0, 0, 4092},
		{100, 100, 4092},
		{0, 4, 4088},
		{0, 4092, 0},
		{4, 0, 0},
		{4092, 0, 4088},
		{2048, 1024, 1020},
		{1024, 2048, 3068},
	}
	for _, line := range data {
		if got := freeSpace(line.rd, line.wr, 4096, 4); got != line.want {
			t.Errorf("freeSpace(%d, %d) = %d, want %d", line.rd, line.wr, got, line.want)
		}
	}
}

func TestFreeSpace_Range(t *testing.T) {
	const size, reserved = 4096, 4
	for rd := uint16(0); rd < size; rd += 4 {
		for wr := uint16(0); wr < size; wr += 4 {
			got := freeSpace(rd, wr, size, reserved)
			if got > size-reserved {
				t.Fatalf("freeSpace(%d, %d) = %d, out of range", rd, wr, got)
			}
			diff := (int(wr) - int(rd) + size) % size
			if diff <= size-reserved && int(got) != size-reserved-diff {
				t.Fatalf("freeSpace(%d, %d) = %d, want %d", rd, wr, got, size-reserved-diff)
			}
		}
	}
}

func TestDev_FreeSpace(t *testing.T) {
	c := newFakeChip()
	c.put16(RegCmdRead, 1000)
	c.put16(RegCmdWrite, 1200)
	d := newTestDev(c, nil)
	got, err := d.FreeSpace()
	if err != nil {
		t.Fatal(err)
	}
	if got != 4096-4-200 {
		t.Fatalf("FreeSpace() = %d", got)
	}
	// The pointers are read from the chip every time.
	want := []op{
		{kind: 'r', addr: RegCmdRead, data: []byte{0xe8, 0x03}},
		{kind: 'r', addr: RegCmdWrite, data: []byte{0xb0, 0x04}},
	}
	if diff := cmp.Diff(c.ops, want, cmp.AllowUnexported(op{})); diff != "" {
		t.Fatalf("ops difference (-got +want):\n%s", diff)
	}
}

func TestCmd_Commit(t *testing.T) {
	c := newFakeChip()
	d := newTestDev(c, nil)
	if err := d.Cmd(0xFFFFFF00, 0x02000000, 0x26000007); err != nil {
		t.Fatal(err)
	}
	if err := d.Commit(); err != nil {
		t.Fatal(err)
	}
	want := []op{
		w32(RamCmd+0, 0xFFFFFF00),
		w32(RamCmd+4, 0x02000000),
		w32(RamCmd+8, 0x26000007),
		w16(RegCmdWrite, 12),
	}
	if diff := cmp.Diff(c.ops, want, cmp.AllowUnexported(op{})); diff != "" {
		t.Fatalf("ops difference (-got +want):\n%s", diff)
	}
}

func TestCmd_Wrap(t *testing.T) {
	c := newFakeChip()
	d := newTestDev(c, nil)
	d.cmdWrite = 4092
	if err := d.Cmd(1, 2); err != nil {
		t.Fatal(err)
	}
	want := []op{w32(RamCmd+4092, 1), w32(RamCmd, 2)}
	if diff := cmp.Diff(c.ops, want, cmp.AllowUnexported(op{})); diff != "" {
		t.Fatalf("ops difference (-got +want):\n%s", diff)
	}
	if d.cmdWrite != 4 {
		t.Fatalf("cursor = %d, want 4", d.cmdWrite)
	}
}

func TestCmd_Error(t *testing.T) {
	c := newFakeChip()
	c.failAfter = 2
	d := newTestDev(c, nil)
	if err := d.Cmd(1, 2, 3); !errors.Is(err, errFakeBus) {
		t.Fatalf("Cmd() = %v", err)
	}
	// The word that failed is not accounted for.
	if d.cmdWrite != 4 {
		t.Fatalf("cursor = %d, want 4", d.cmdWrite)
	}
}

func TestCmdBuf(t *testing.T) {
	data := []struct {
		name   string
		n      int
		chunks []int
	}{
		{"empty", 0, nil},
		{"one byte", 1, []int{4}},
		{"aligned", 8, []int{8}},
		{"exactly one chunk", 512, []int{512}},
		{"three chunks", 1300, []int{512, 512, 276}},
		{"padded tail", 1301, []int{512, 512, 280}},
		{"wraps the ring", 5000, []int{512, 512, 512, 512, 512, 512, 512, 512, 512, 392}},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			c := newFakeChip()
			c.onWrite = drain
			d := newTestDev(c, nil)
			b := make([]byte, line.n)
			for i := range b {
				b[i] = byte(i%251 + 1)
			}
			if err := d.CmdBuf(context.Background(), b); err != nil {
				t.Fatal(err)
			}
			var chunks []int
			var got []byte
			commits := 0
			for _, o := range c.writes() {
				if o.addr == RegCmdWrite {
					commits++
					continue
				}
				chunks = append(chunks, len(o.data))
				got = append(got, o.data...)
			}
			if diff := cmp.Diff(chunks, line.chunks, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("chunks difference (-got +want):\n%s", diff)
			}
			if commits != len(line.chunks) {
				t.Fatalf("%d commits, want one per chunk", commits)
			}
			if !bytes.Equal(got[:line.n], b) {
				t.Fatal("payload corrupted")
			}
			for _, v := range got[line.n:] {
				if v != 0 {
					t.Fatalf("padding % x", got[line.n:])
				}
			}
			if want := uint16(len(got) % 4096); d.cmdWrite != want {
				t.Fatalf("cursor = %d, want %d", d.cmdWrite, want)
			}
		})
	}
}

func TestCmdBuf_SplitAtEnd(t *testing.T) {
	c := newFakeChip()
	c.onWrite = drain
	c.put16(RegCmdRead, 3900)
	c.put16(RegCmdWrite, 3900)
	d := newTestDev(c, nil)
	d.cmdWrite = 3900
	b := bytes.Repeat([]byte{0xAA}, 512)
	if err := d.CmdBuf(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	want := []op{
		{kind: 'w', addr: RamCmd + 3900, data: b[:196]},
		{kind: 'w', addr: RamCmd, data: b[196:]},
		w16(RegCmdWrite, 316),
	}
	if diff := cmp.Diff(c.writes(), want, cmp.AllowUnexported(op{})); diff != "" {
		t.Fatalf("writes difference (-got +want):\n%s", diff)
	}
}

func TestCmdBuf_WaitsForRoom(t *testing.T) {
	c := newFakeChip()
	// The ring is almost full; the coprocessor catches up after a few polls.
	c.put16(RegCmdRead, 0)
	c.put16(RegCmdWrite, 4000)
	polls := 0
	c.onRead = func(c *fakeChip, addr uint32, n int) {
		if addr == RegCmdRead {
			if polls++; polls == 3 {
				c.put16(RegCmdRead, 4000)
			}
		}
	}
	d := newTestDev(c, nil)
	d.cmdWrite = 4000
	if err := d.CmdBuf(context.Background(), []byte{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if polls != 3 {
		t.Fatalf("%d polls", polls)
	}
	want := []op{
		w32(RamCmd+4000, 0x04030201),
		w16(RegCmdWrite, 4004),
	}
	if diff := cmp.Diff(c.writes(), want, cmp.AllowUnexported(op{})); diff != "" {
		t.Fatalf("writes difference (-got +want):\n%s", diff)
	}
}

func TestCmdBuf_ChunkFitsBus(t *testing.T) {
	c := newFakeChip()
	c.onWrite = drain
	d := newDev(&limitedChip{c, 64}, &DefaultOpts)
	if d.opts.FIFO.Chunk != 60 {
		t.Fatalf("Chunk = %d", d.opts.FIFO.Chunk)
	}
	if err := d.CmdBuf(context.Background(), make([]byte, 130)); err != nil {
		t.Fatal(err)
	}
	var chunks []int
	for _, o := range c.writes() {
		if o.addr != RegCmdWrite {
			chunks = append(chunks, len(o.data))
		}
	}
	if diff := cmp.Diff(chunks, []int{60, 60, 12}); diff != "" {
		t.Fatalf("chunks difference (-got +want):\n%s", diff)
	}
}

func TestCmdBuf_Fault(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	recovery := []op{
		w8(RegCPUReset, 1),
		w16(RegCmdRead, 0),
		w16(RegCmdWrite, 0),
		w16(RegCmdDL, 0),
		w8(RegCPUReset, 0),
		w32(RegCoproPatchPtr, 0x1234),
	}
	t.Run("before the first chunk", func(t *testing.T) {
		c := newFakeChip()
		c.put16(RegCmdRead, 0xFFF)
		c.put16(RegCmdWrite, 100)
		c.put32(RegCoproPatchPtr, 0x1234)
		c.putBytes(RamErrReport, []byte("invalid command\x00"))
		var faults []*Fault
		opts := DefaultOpts
		opts.OnFault = func(f *Fault) { faults = append(faults, f) }
		d := newTestDev(c, &opts)
		d.cmdWrite = 100
		if err := d.CmdBuf(context.Background(), make([]byte, 8)); err != nil {
			t.Fatalf("CmdBuf() = %v", err)
		}
		if diff := cmp.Diff(c.writes(), recovery, cmp.AllowUnexported(op{})); diff != "" {
			t.Fatalf("writes difference (-got +want):\n%s", diff)
		}
		if diff := cmp.Diff(faults, []*Fault{{Message: "invalid command", PatchPtr: 0x1234}}); diff != "" {
			t.Fatalf("OnFault difference (-got +want):\n%s", diff)
		}
		if diff := cmp.Diff(c.delays, []time.Duration{250 * time.Millisecond}); diff != "" {
			t.Fatalf("delays difference (-got +want):\n%s", diff)
		}
		if d.cmdWrite != 0 {
			t.Fatalf("cursor = %d", d.cmdWrite)
		}
	})
	t.Run("mid stream", func(t *testing.T) {
		c := newFakeChip()
		c.put32(RegCoproPatchPtr, 0x1234)
		faulted := false
		c.onWrite = func(c *fakeChip, addr uint32, data []byte) {
			if addr == RegCmdWrite && !faulted {
				faulted = true
				c.put16(RegCmdRead, 0xFFF)
			}
		}
		d := newTestDev(c, nil)
		b := bytes.Repeat([]byte{0x55}, 1300)
		if err := d.CmdBuf(context.Background(), b); err != nil {
			t.Fatalf("CmdBuf() = %v", err)
		}
		want := append([]op{
			{kind: 'w', addr: RamCmd, data: b[:512]},
			w16(RegCmdWrite, 512),
		}, recovery...)
		if diff := cmp.Diff(c.writes(), want, cmp.AllowUnexported(op{})); diff != "" {
			t.Fatalf("writes difference (-got +want):\n%s", diff)
		}
	})
}

func TestWaitFreeSpace_Fault(t *testing.T) {
	c := newFakeChip()
	c.put16(RegCmdRead, 0xFFF)
	d := newTestDev(c, nil)
	if err := d.WaitFreeSpace(context.Background(), 4); !errors.Is(err, ErrFault) {
		t.Fatalf("WaitFreeSpace() = %v", err)
	}
	if len(c.writes()) != 0 {
		t.Fatal("WaitFreeSpace must not recover")
	}
}

func TestWaitIdle(t *testing.T) {
	c := newFakeChip()
	c.onWrite = drain
	d := newTestDev(c, nil)
	if err := d.Cmd(1, 2, 3); err != nil {
		t.Fatal(err)
	}
	if err := d.Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := c.get16(RegCmdRead); got != 12 {
		t.Fatalf("REG_CMD_READ = %d", got)
	}
}

func TestWaitIdle_Timeout(t *testing.T) {
	c := newFakeChip()
	c.put16(RegCmdWrite, 8)
	opts := DefaultOpts
	opts.WaitTimeout = 10 * time.Millisecond
	d := newTestDev(c, &opts)
	err := d.WaitIdle(context.Background())
	if !errors.Is(err, ErrTimeout) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("WaitIdle() = %v", err)
	}
}

func TestWaitIdle_Canceled(t *testing.T) {
	c := newFakeChip()
	c.put16(RegCmdWrite, 8)
	opts := DefaultOpts
	opts.WaitTimeout = 0
	d := newTestDev(c, &opts)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.WaitIdle(ctx)
	if !errors.Is(err, ErrTimeout) || !errors.Is(err, context.Canceled) {
		t.Fatalf("WaitIdle() = %v", err)
	}
}

func TestWaitIdle_Fault(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	c := newFakeChip()
	c.put16(RegCmdRead, 0xFFF)
	c.put16(RegCmdWrite, 100)
	c.put16(RegCmdDL, 24)
	c.put32(RegCoproPatchPtr, 0x1234)
	c.putBytes(RamErrReport, []byte("display list overflow\x00garbage"))
	var faults []*Fault
	opts := DefaultOpts
	opts.OnFault = func(f *Fault) { faults = append(faults, f) }
	d := newTestDev(c, &opts)
	d.cmdWrite = 100

	if err := d.WaitIdle(context.Background()); err != nil {
		t.Fatalf("WaitIdle() = %v", err)
	}
	want := []op{
		w8(RegCPUReset, 1),
		w16(RegCmdRead, 0),
		w16(RegCmdWrite, 0),
		w16(RegCmdDL, 0),
		w8(RegCPUReset, 0),
		w32(RegCoproPatchPtr, 0x1234),
	}
	if diff := cmp.Diff(c.writes(), want, cmp.AllowUnexported(op{})); diff != "" {
		t.Fatalf("recovery difference (-got +want):\n%s", diff)
	}
	// The patch pointer is read before the coprocessor is reset.
	var patchRead, firstWrite int
	for i, o := range c.ops {
		if o.kind == 'r' && o.addr == RegCoproPatchPtr {
			patchRead = i
		}
		if o.kind == 'w' && firstWrite == 0 {
			firstWrite = i
		}
	}
	if patchRead > firstWrite {
		t.Fatal("patch pointer read after the reset")
	}
	if d.cmdWrite != 0 || c.get16(RegCmdRead) != 0 || c.get16(RegCmdWrite) != 0 {
		t.Fatal("pointers not cleared")
	}
	if diff := cmp.Diff(faults, []*Fault{{Message: "display list overflow", PatchPtr: 0x1234}}); diff != "" {
		t.Fatalf("OnFault difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(c.delays, []time.Duration{250 * time.Millisecond}); diff != "" {
		t.Fatalf("delays difference (-got +want):\n%s", diff)
	}
}

func TestDev_Concurrent(t *testing.T) {
	c := newFakeChip()
	d := newTestDev(c, nil)
	var wg sync.WaitGroup
	for g := uint32(1); g <= 4; g++ {
		wg.Add(1)
		go func(g uint32) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if err := d.Cmd(g<<8|1, g<<8|2, g<<8|3); err != nil {
					t.Error(err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	w := c.writes()
	if len(w) != 4*50*3 {
		t.Fatalf("%d writes", len(w))
	}
	// The words of one Cmd call are never interleaved with another's.
	for i := 0; i < len(w); i += 3 {
		g := binary32(w[i].data) >> 8
		for j := 0; j < 3; j++ {
			if v := binary32(w[i+j].data); v != g<<8|uint32(j+1) {
				t.Fatalf("write %d = %#x, interleaved", i+j, v)
			}
		}
	}
}

func binary32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
