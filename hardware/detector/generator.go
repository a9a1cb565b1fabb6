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
	"github.com/madlab/multibeam/hardware/daq"
)

// Sentinal error returned by the signal generator.
const WriteError = "generator: %v: %v"

// generator drives the control port through the fixed scan sequence:
//
//	RESET_HIGH -> RESET_LOW -> (CLOCK_HIGH -> CLOCK_LOW) x 16 -> RESET_HIGH
//
// Every transition is published on the phase bus before the corresponding
// physical write; the phase level is then held for its nominal duration,
// measured from the moment of the write request. Transitions are purely
// time driven.
//
// A failed write is fatal. The generator cannot safely continue driving
// signals it cannot verify reached the device.
type generator struct {
	drv    daq.Driver
	timing Timing
	bus    *phaseBus
	stop   *stopFlag

	// completed scan cycles. shared with the Detector through an atomic
	// counter owned by the Detector
	cycles *counter
}

func (gen *generator) run() error {
	// subscribers learn of the generator's exit from the closing of the
	// phase bus, whatever the reason for the exit
	defer gen.bus.close()

	// the stop signal is only checked at cycle boundaries. a stop
	// requested mid-cycle takes effect after the in-flight cycle's
	// remaining tubes have been clocked
	for !gen.stop.isSet() {
		cycle := gen.cycles.value() + 1

		err := gen.transition(Phase{Kind: ResetAsserted, Cycle: cycle},
			resetLevels(true), gen.timing.ResetHigh)
		if err != nil {
			return err
		}

		err = gen.transition(Phase{Kind: ResetReleased, Cycle: cycle},
			resetLevels(false), gen.timing.ResetRecovery)
		if err != nil {
			return err
		}

		for t := 0; t < NumTubes; t++ {
			err = gen.transition(Phase{Kind: ClockRose, Tube: t, Cycle: cycle},
				clockLevels(true), gen.timing.ClockHigh)
			if err != nil {
				return err
			}

			err = gen.transition(Phase{Kind: ClockFell, Tube: t, Cycle: cycle},
				clockLevels(false), gen.timing.ClockLow)
			if err != nil {
				return err
			}
		}

		gen.cycles.increment()
	}

	return nil
}

// transition performs one step of the scan sequence: announce the phase,
// make the one physical write that realises it, and hold the level for the
// phase's nominal duration.
//
// The hold is measured from the moment of the write request, not from its
// completion. The generator must hold each level for no less than its
// nominal duration; the sampler's phase-event anchoring depends on it.
func (gen *generator) transition(ph Phase, levels []bool, width time.Duration) error {
	gen.bus.publish(ph)

	start := time.Now()
	err := gen.drv.WriteLines(daq.PortControl, levels, width)
	if err != nil {
		return curated.Errorf(WriteError, ph, err)
	}

	if rem := width - time.Since(start); rem > 0 {
		time.Sleep(rem)
	}

	return nil
}

// control port levels for the reset phases. the clock line is always low
// while reset is being driven.
func resetLevels(assert bool) []bool {
	levels := make([]bool, daq.ControlLineCount)
	levels[daq.ResetLine] = assert
	return levels
}

// control port levels for the clock phases. the reset line is always low
// while the clock is being driven.
func clockLevels(high bool) []bool {
	levels := make([]bool, daq.ControlLineCount)
	levels[daq.ClockLine] = high
	return levels
}
