// This file is part of Multibeam.
//
// Multibeam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Multibeam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Multibeam.  If not, see <https://www.gnu.org/licenses/>.

package simulation

import (
	"sync"
	"time"

	"github.com/madlab/multibeam/curated"
	"github.com/madlab/multibeam/hardware/daq"
)

// the number of tubes in the detector. must agree with the detector
// package but we don't import it to keep the dependency one-way.
const numTubes = 16

// Sentinal errors returned by the simulated device.
const (
	ClosedError   = "simulation: device is closed"
	BadPortError  = "simulation: %s: unexpected %s"
	BadWidthError = "simulation: %s: unexpected line count (%d)"
)

// Device is a software model of the detector's multiplexer and shift
// register, implementing the daq.Driver interface. It observes the reset
// and clock levels written to the control port and serves tube readings on
// the data port accordingly.
//
// What a tube reads is decided by the Script supplied to NewDevice().
type Device struct {
	crit sync.Mutex

	script Script
	closed bool

	// current output line levels, as most recently written
	reset bool
	clock bool

	// a reset pulse arms the shift register. the first clock rising edge
	// after arming selects tube 0; each subsequent rising edge advances
	// the selection
	armed  bool
	cursor int

	// cycles is incremented on every reset rising edge. the first cycle
	// is cycle 1
	cycle uint64

	// scripted write failure. when set, all writes fail with this error
	// (for testing the generator's fatal-write path)
	writeFailure error
}

// NewDevice creates a simulated detector device serving readings from the
// supplied script.
func NewDevice(script Script) *Device {
	return &Device{script: script}
}

// FailWrites causes all future writes to fail with the supplied error.
func (dev *Device) FailWrites(err error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.writeFailure = err
}

// Cycle returns the number of reset pulses observed so far.
func (dev *Device) Cycle() uint64 {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.cycle
}

// WriteLines implements the daq.Driver interface.
func (dev *Device) WriteLines(port daq.Port, levels []bool, _ time.Duration) error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.closed {
		return curated.Errorf(ClosedError)
	}
	if port != daq.PortControl {
		return curated.Errorf(BadPortError, "write", port)
	}
	if len(levels) != daq.ControlLineCount {
		return curated.Errorf(BadWidthError, "write", len(levels))
	}
	if dev.writeFailure != nil {
		return dev.writeFailure
	}

	reset := levels[daq.ResetLine]
	clock := levels[daq.ClockLine]

	// reset rising edge starts a new scan cycle
	if reset && !dev.reset {
		dev.armed = true
		dev.cycle++
	}

	// clock rising edge advances the tube selection
	if clock && !dev.clock {
		if dev.armed {
			dev.cursor = 0
			dev.armed = false
		} else {
			dev.cursor = (dev.cursor + 1) % numTubes
		}
	}

	dev.reset = reset
	dev.clock = clock

	return nil
}

// ReadLines implements the daq.Driver interface.
func (dev *Device) ReadLines(port daq.Port, count int, timeout time.Duration) ([]bool, error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.closed {
		return nil, curated.Errorf(ClosedError)
	}
	if port != daq.PortData {
		return nil, curated.Errorf(BadPortError, "read", port)
	}
	if count != daq.DataLineCount {
		return nil, curated.Errorf(BadWidthError, "read", count)
	}

	r, ok := dev.script.Reading(dev.cycle, dev.cursor)
	if !ok {
		return nil, curated.Errorf(daq.TimeoutError, "read", timeout)
	}

	levels := make([]bool, daq.DataLineCount)
	copy(levels, r.Data[:])
	levels[daq.DataValidLine] = r.Valid

	return levels, nil
}

// Close implements the daq.Driver interface.
func (dev *Device) Close() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.closed = true
	return nil
}
