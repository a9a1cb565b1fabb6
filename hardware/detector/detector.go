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
	"sync/atomic"

	"github.com/madlab/multibeam/hardware/daq"
	"github.com/madlab/multibeam/logger"
)

// stopFlag is the process-wide stop signal for an acquisition. set once,
// never cleared.
type stopFlag struct {
	v int32
}

func (s *stopFlag) set() {
	atomic.StoreInt32(&s.v, 1)
}

func (s *stopFlag) isSet() bool {
	return atomic.LoadInt32(&s.v) == 1
}

// counter is an atomically accessed uint64.
type counter struct {
	v uint64
}

func (c *counter) increment() {
	atomic.AddUint64(&c.v, 1)
}

func (c *counter) value() uint64 {
	return atomic.LoadUint64(&c.v)
}

// Detector runs the multiplexed-scan protocol against a daq.Driver and
// maintains the table of tube states. The signal generator and the
// synchronized sampler run as two concurrent activities coordinated only
// through the phase-event stream.
type Detector struct {
	drv    daq.Driver
	timing Timing
	tubes  *Tubes
	bus    *phaseBus
	stop   stopFlag
	cycles counter
}

// NewDetector is the preferred method of initialisation of the Detector
// type. The Driver is owned by the Detector from this point on and is
// closed when Run() returns.
func NewDetector(drv daq.Driver, timing Timing) *Detector {
	return &Detector{
		drv:    drv,
		timing: timing,
		tubes:  NewTubes(),
		bus:    &phaseBus{},
	}
}

// Run the acquisition until Stop() is called or a fatal error occurs.
// Acquisition is otherwise unbounded; the protocol is designed to run for
// hours without drift because every phase is re-anchored to the generator's
// event stream rather than to accumulated sleep times.
//
// Run() blocks for the duration of the acquisition. The tube table can be
// observed concurrently through Snapshot().
func (det *Detector) Run() error {
	defer func() {
		err := det.drv.Close()
		if err != nil {
			logger.Logf("detector", "closing driver: %v", err)
		}
	}()

	gen := &generator{
		drv:    det.drv,
		timing: det.timing,
		bus:    det.bus,
		stop:   &det.stop,
		cycles: &det.cycles,
	}

	smp := &sampler{
		drv:    det.drv,
		timing: det.timing,
		events: det.bus.Subscribe(),
		tubes:  det.tubes,
	}

	genErr := make(chan error)
	smpErr := make(chan error)

	go func() {
		genErr <- gen.run()
	}()
	go func() {
		smpErr <- smp.run()
	}()

	// the generator closing the phase bus on exit guarantees the sampler
	// terminates; a sampler failure requires an explicit stop request to
	// bring the generator to its next cycle boundary
	var result error

	select {
	case err := <-genErr:
		result = err
		if err != nil {
			det.Stop()
		}
		err = <-smpErr
		if err != nil {
			if result == nil {
				result = err
			} else {
				logger.Logf("detector", "sampler: %v", err)
			}
		}

	case err := <-smpErr:
		result = err
		det.Stop()
		err = <-genErr
		if err != nil && result == nil {
			result = err
		}
	}

	if result != nil {
		logger.Logf("detector", "acquisition ended: %v", result)
	}

	return result
}

// Stop requests that the acquisition ends. The request is honoured at the
// next cycle boundary; an in-flight cycle always completes all sixteen
// tubes. Safe to call from any goroutine and more than once.
func (det *Detector) Stop() {
	det.stop.set()
}

// Snapshot returns a copy of the state of every tube, without blocking
// acquisition.
func (det *Detector) Snapshot() [NumTubes]TubeState {
	return det.tubes.Snapshot()
}

// DegradedCycles returns the number of cycles in which acquisition was
// degraded by repeated read failures.
func (det *Detector) DegradedCycles() int {
	return det.tubes.DegradedCycles()
}

// ScanCycles returns the number of completed scan cycles.
func (det *Detector) ScanCycles() uint64 {
	return det.cycles.value()
}

// Timing returns the timing parameters the acquisition is running with.
func (det *Detector) Timing() Timing {
	return det.timing
}
