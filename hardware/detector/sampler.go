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
	"fmt"
	"time"

	"github.com/madlab/multibeam/curated"
	"github.com/madlab/multibeam/hardware/daq"
	"github.com/madlab/multibeam/logger"
)

// Sentinal error returned by the sampler when the phase-event stream does
// not match the scan sequence. This should not occur if the generator is
// honouring the protocol; if it does occur it is a defect and is never
// masked.
const LostSyncError = "sampler: lost synchronisation: expected %s; got %v"

// number of consecutive read failures in one cycle that marks the cycle
// as degraded.
const degradedThreshold = 3

// sampler reads the data port once per tube per cycle, in step with the
// signal generator. It is a reactor over the generator's phase-event
// stream: it anchors itself to the cycle boundary by waiting for the
// reset-asserted event and then walks the sixteen clock windows in order.
//
// Within each clock window the sampler waits out the settling delay, so
// that the read happens strictly inside the pulse rather than at its
// edge, and bounds the read by the read-window duration.
type sampler struct {
	drv    daq.Driver
	timing Timing
	events <-chan Phase
	tubes  *Tubes
}

func (smp *sampler) run() error {
	for {
		// anchor to the start of a cycle. sampling anything before the
		// reset pulse has been observed would read stale or mid-reset
		// signal states
		ph, ok := <-smp.events
		if !ok {
			return nil
		}
		if ph.Kind != ResetAsserted {
			return curated.Errorf(LostSyncError, ResetAsserted, ph)
		}

		ph, ok = <-smp.events
		if !ok {
			return nil
		}
		if ph.Kind != ResetReleased {
			return curated.Errorf(LostSyncError, ResetReleased, ph)
		}

		err := smp.cycle()
		if err != nil {
			return err
		}
	}
}

// cycle samples all sixteen tubes, in increasing order. the ordering
// matters: the decoder's prior-position rule must refer to each tube's own
// history.
func (smp *sampler) cycle() error {
	// read failures are recoverable but a run of them suggests the
	// detector side of the acquisition has degraded. this is counted per
	// cycle, not per tube
	consecutiveFailures := 0
	degraded := false

	for t := 0; t < NumTubes; t++ {
		err := smp.expect(ClockRose, t)
		if err != nil {
			return err
		}

		// read strictly inside the clock pulse, not at its edge
		time.Sleep(smp.timing.Settle)

		levels, err := smp.drv.ReadLines(daq.PortData, daq.DataLineCount, smp.timing.ReadWindow)
		if err != nil {
			// a failed read is not fatal. the tube's previous state is
			// left unchanged for this cycle and acquisition continues
			logger.Logf("sampler", "tube %d: read skipped: %v", t, err)

			consecutiveFailures++
			if consecutiveFailures == degradedThreshold && !degraded {
				degraded = true
				smp.tubes.recordDegradedCycle()
				logger.Logf("sampler", "acquisition degraded: %d consecutive read failures", consecutiveFailures)
			}
		} else {
			consecutiveFailures = 0

			sample, err := NewSample(levels)
			if err != nil {
				return err
			}
			smp.tubes.apply(t, sample)
		}

		err = smp.expect(ClockFell, t)
		if err != nil {
			return err
		}
	}

	return nil
}

// expect the next phase event to be of the specified kind and tube.
// a closed event stream is reported as lost synchronisation mid-cycle;
// the generator only closes the bus between cycles under normal
// operation.
func (smp *sampler) expect(kind PhaseKind, t int) error {
	ph, ok := <-smp.events
	if !ok {
		return curated.Errorf(LostSyncError, fmt.Sprintf("%v (tube %d)", kind, t), "closed event stream")
	}
	if ph.Kind != kind || ph.Tube != t {
		return curated.Errorf(LostSyncError, fmt.Sprintf("%v (tube %d)", kind, t), ph)
	}
	return nil
}
