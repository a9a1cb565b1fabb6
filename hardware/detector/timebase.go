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

package detector

import (
	"time"

	"github.com/madlab/multibeam/curated"
)

// DefaultUnit is the timebase used when no preset has been selected. It
// gives the detector a 1kHz scan clock.
const DefaultUnit = 200 * time.Microsecond

// ParsePreset converts a timebase preset, expressed in milliseconds as it
// appears on the detector's selection menu, to a duration. The recognised
// presets are "0.01", "0.1", "1.0" and "10.0".
//
// An empty or unrecognised preset returns DefaultUnit and false. The
// caller can treat that however it likes but the expected response is a
// note in the log, not an error.
func ParsePreset(preset string) (time.Duration, bool) {
	switch preset {
	case "0.01":
		return 10 * time.Microsecond, true
	case "0.1":
		return 100 * time.Microsecond, true
	case "1.0":
		return time.Millisecond, true
	case "10.0":
		return 10 * time.Millisecond, true
	}
	return DefaultUnit, false
}

// Sentinal error returned by NewTiming().
const InvalidTimebase = "timebase: unit must be positive (%v)"

// Timing is the set of phase durations used by the scan protocol, all
// derived from a single base unit (Tb). Immutable once acquisition has
// started.
type Timing struct {
	// the base unit all other durations are derived from
	Unit time.Duration

	// width of the reset pulse that starts a cycle (3Tb)
	ResetHigh time.Duration

	// recovery period after the reset pulse before the first clock (1Tb)
	ResetRecovery time.Duration

	// high and low widths of each tube's clock pulse (2.5Tb each)
	ClockHigh time.Duration
	ClockLow  time.Duration

	// settling delay after a clock rising edge before the sampler may
	// read (1Tb)
	Settle time.Duration

	// the window within which a read must complete (2Tb)
	ReadWindow time.Duration
}

// NewTiming derives the scan phase durations from the supplied base unit.
// A non-positive unit is a configuration error.
func NewTiming(unit time.Duration) (Timing, error) {
	if unit <= 0 {
		return Timing{}, curated.Errorf(InvalidTimebase, unit)
	}

	return Timing{
		Unit:          unit,
		ResetHigh:     3 * unit,
		ResetRecovery: unit,
		ClockHigh:     unit * 5 / 2,
		ClockLow:      unit * 5 / 2,
		Settle:        unit,
		ReadWindow:    2 * unit,
	}, nil
}

// CycleWidth returns the nominal duration of one complete scan cycle: the
// reset pulse, the recovery period and sixteen full clock pulses.
func (tm Timing) CycleWidth() time.Duration {
	return tm.ResetHigh + tm.ResetRecovery + NumTubes*(tm.ClockHigh+tm.ClockLow)
}
