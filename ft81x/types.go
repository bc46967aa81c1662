// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ft81x

import (
	"fmt"
	"strings"
)

func (b Board) String() string {
	switch b {
	case EVE2, EVE3, EVE4:
		return fmt.Sprintf("EVE%d", int(b))
	default:
		return fmt.Sprintf("Board(%d)", int(b))
	}
}

// Set sets the Board to a value represented by the string s. Set implements the flag.Value interface.
func (b *Board) Set(s string) error {
	switch strings.ToUpper(s) {
	case "EVE2", "2":
		*b = EVE2
	case "EVE3", "3":
		*b = EVE3
	case "EVE4", "4":
		*b = EVE4
	default:
		return fmt.Errorf("unknown board %q: expected EVE2, EVE3 or EVE4", s)
	}
	return nil
}

func (t Touch) String() string {
	switch t {
	case TouchNone:
		return "none"
	case TouchResistive:
		return "resistive"
	case TouchCapacitive:
		return "capacitive"
	default:
		return fmt.Sprintf("Touch(%d)", int(t))
	}
}

// Set sets the Touch to a value represented by the string s. Set implements the flag.Value interface.
func (t *Touch) Set(s string) error {
	switch strings.ToLower(s) {
	case "none", "":
		*t = TouchNone
	case "resistive", "tpr":
		*t = TouchResistive
	case "capacitive", "tpc":
		*t = TouchCapacitive
	default:
		return fmt.Errorf("unknown touch panel %q: expected none, resistive or capacitive", s)
	}
	return nil
}
