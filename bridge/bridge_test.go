// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bridge

import (
	"errors"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/eve/ft81x"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"
)

// simChip answers SPI transfers like an idle controller would.
type simChip struct {
	mem     map[uint32]byte
	txs     int
	mode    spi.Mode
	freq    physic.Frequency
	unknown []byte
}

func newSimChip() *simChip {
	s := &simChip{mem: map[uint32]byte{}}
	s.mem[ft81x.RegID] = 0x7C
	return s
}

func (s *simChip) String() string { return "sim" }

func (s *simChip) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	s.freq, s.mode = f, mode
	return s, nil
}

func (s *simChip) LimitSpeed(f physic.Frequency) error { return nil }

func (s *simChip) Duplex() conn.Duplex { return conn.Full }

func (s *simChip) TxPackets(p []spi.Packet) error { return errors.New("not supported") }

func (s *simChip) Tx(w, r []byte) error {
	s.txs++
	addr := uint32(w[0]&0x3F)<<16 | uint32(w[1])<<8 | uint32(w[2])
	switch {
	case len(r) != 0:
		for i := 4; i < len(r); i++ {
			r[i] = s.mem[addr+uint32(i-4)]
		}
	case w[0]&0x80 != 0:
		for i, b := range w[3:] {
			s.mem[addr+uint32(i)] = b
		}
	case len(w) != 3:
		s.unknown = w
	}
	return nil
}

type closer struct {
	closed int
}

func (c *closer) Close() error {
	c.closed++
	return nil
}

func TestOpen(t *testing.T) {
	s := newSimChip()
	c := &closer{}
	l, err := open(s, c, "sim", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.mode != spi.Mode0 || s.freq != ft81x.DefaultOpts.Speed {
		t.Fatalf("connected in mode %s at %s", s.mode, s.freq)
	}
	if s.unknown != nil {
		t.Fatalf("malformed transfer % x", s.unknown)
	}
	if !strings.HasSuffix(l.String(), " via sim") {
		t.Fatalf("String() = %q", l.String())
	}
	if s.mem[ft81x.RegPWMDuty] != 128 {
		t.Fatal("backlight not turned on")
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if s.mem[ft81x.RegPWMDuty] != 0 {
		t.Fatal("backlight not turned off")
	}
	if c.closed != 1 {
		t.Fatal("port not closed")
	}
}

func TestOpen_Failure(t *testing.T) {
	pb := &spitest.Playback{Playback: conntest.Playback{DontPanic: true}}
	c := &closer{}
	if _, err := open(pb, c, "playback", nil, nil); err == nil {
		t.Fatal("expected error")
	}
	if c.closed != 1 {
		t.Fatal("port must be closed when the bring-up fails")
	}
}

func TestOpen_NotDetected(t *testing.T) {
	s := newSimChip()
	s.mem[ft81x.RegID] = 0
	c := &closer{}
	opts := ft81x.DefaultOpts
	opts.ProbeAttempts = 2
	if _, err := open(s, c, "sim", nil, &opts); !errors.Is(err, ft81x.ErrNotDetected) {
		t.Fatalf("open() = %v", err)
	}
}

func TestOpenSPI_UnknownPin(t *testing.T) {
	_, err := OpenSPI("", "NO_SUCH_PIN", nil)
	if err == nil || !strings.Contains(err.Error(), "NO_SUCH_PIN") {
		t.Fatalf("OpenSPI() = %v", err)
	}
}
