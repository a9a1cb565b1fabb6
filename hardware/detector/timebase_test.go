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

package detector_test

import (
	"testing"
	"time"

	"github.com/madlab/multibeam/curated"
	"github.com/madlab/multibeam/hardware/detector"
	"github.com/madlab/multibeam/test"
)

func TestDerivedDurations(t *testing.T) {
	for _, unit := range []time.Duration{
		time.Microsecond,
		200 * time.Microsecond,
		time.Millisecond,
		10 * time.Millisecond,
	} {
		timing, err := detector.NewTiming(unit)
		test.ExpectedSuccess(t, err)

		test.Equate(t, timing.Unit, unit)
		test.Equate(t, timing.ResetHigh, 3*unit)
		test.Equate(t, timing.ResetRecovery, unit)
		test.Equate(t, timing.ClockHigh, unit*5/2)
		test.Equate(t, timing.ClockLow, unit*5/2)
		test.Equate(t, timing.Settle, unit)
		test.Equate(t, timing.ReadWindow, 2*unit)
	}
}

func TestInvalidUnit(t *testing.T) {
	_, err := detector.NewTiming(0)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, detector.InvalidTimebase))

	_, err = detector.NewTiming(-time.Millisecond)
	test.ExpectedFailure(t, err)
}

func TestPresets(t *testing.T) {
	for _, pst := range []struct {
		menu string
		unit time.Duration
	}{
		{"0.01", 10 * time.Microsecond},
		{"0.1", 100 * time.Microsecond},
		{"1.0", time.Millisecond},
		{"10.0", 10 * time.Millisecond},
	} {
		unit, ok := detector.ParsePreset(pst.menu)
		test.ExpectedSuccess(t, ok)
		test.Equate(t, unit, pst.unit)
	}

	// no preset and unrecognised presets fall back to the default
	unit, ok := detector.ParsePreset("")
	test.ExpectedFailure(t, ok)
	test.Equate(t, unit, detector.DefaultUnit)

	unit, ok = detector.ParsePreset("2.5")
	test.ExpectedFailure(t, ok)
	test.Equate(t, unit, detector.DefaultUnit)
}

func TestCycleWidth(t *testing.T) {
	timing, err := detector.NewTiming(100 * time.Microsecond)
	test.ExpectedSuccess(t, err)

	// 3Tb + 1Tb + 16 * (2.5Tb + 2.5Tb) = 84Tb
	test.Equate(t, timing.CycleWidth(), 8400*time.Microsecond)
}
