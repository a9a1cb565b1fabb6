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

package daq

import (
	"time"

	"github.com/madlab/multibeam/curated"
)

// Port identifies one of the acquisition device's digital ports.
type Port int

// List of valid Port values.
const (
	// PortData is the input port. five lines carrying the position code
	// (D0-D3) and the data-valid flag (DV) from the multiplexer
	PortData Port = iota

	// PortControl is the output port. two lines carrying the reset and
	// clock signals to the multiplexer
	PortControl
)

func (p Port) String() string {
	switch p {
	case PortData:
		return "data port"
	case PortControl:
		return "control port"
	}
	return "unknown port"
}

// Number of lines on each port. The detector topology is fixed: sixteen
// tubes multiplexed onto five input lines, driven by two output lines.
const (
	DataLineCount    = 5
	ControlLineCount = 2
)

// Line indices within the level slice for PortControl.
const (
	ResetLine = 0
	ClockLine = 1
)

// Line indices within the level slice for PortData. Lines 0 to 3 are the
// position code, least significant bit first.
const (
	DataValidLine = 4
)

// Sentinal error returned by Driver implementations when a read or write
// does not complete within the caller's timeout.
const TimeoutError = "daq: %s: timeout after %v"

// Driver is the interface to the physical digital line device. All
// operations are bounded by a caller-supplied timeout; an operation that
// cannot complete within the timeout fails with TimeoutError.
//
// Implementations are assumed to be reliable but latency-bounded. Failures
// are reported to the caller, never masked.
type Driver interface {
	// WriteLines sets the level of every line on the port. The levels
	// slice must be the correct length for the port
	WriteLines(port Port, levels []bool, timeout time.Duration) error

	// ReadLines samples the level of count lines on the port
	ReadLines(port Port, count int, timeout time.Duration) ([]bool, error)

	// Close releases the device. Operations on a closed Driver fail
	Close() error
}

// Sentinal error returned by Open().
const NotAvailable = "daq: %v"

// Open the physical acquisition device. Device support is platform
// specific and is not compiled into every build; when absent, Open()
// fails with the NotAvailable error and the simulated device (in the
// simulation package) is the only way to run an acquisition.
func Open() (Driver, error) {
	return nil, curated.Errorf(NotAvailable, "no device support in this build (use the simulated device)")
}
