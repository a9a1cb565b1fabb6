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
	"sync"
	"testing"
	"time"

	"github.com/madlab/multibeam/curated"
	"github.com/madlab/multibeam/hardware/daq/simulation"
	"github.com/madlab/multibeam/hardware/detector"
	"github.com/madlab/multibeam/test"
)

// a short timebase keeps the tests quick without making the phase widths
// so short that scheduling jitter dominates. 500us gives a 42ms cycle.
func testTiming(t *testing.T) detector.Timing {
	t.Helper()
	timing, err := detector.NewTiming(500 * time.Microsecond)
	test.ExpectedSuccess(t, err)
	return timing
}

func TestScanOrdering(t *testing.T) {
	var det *detector.Detector

	// record the order in which tubes are read
	var crit sync.Mutex
	type read struct {
		cycle uint64
		tube  int
	}
	var reads []read

	dev := simulation.NewDevice(simulation.ScriptFunc(func(cycle uint64, tube int) (simulation.Reading, bool) {
		crit.Lock()
		reads = append(reads, read{cycle: cycle, tube: tube})
		crit.Unlock()

		// stopping during tube 7 of cycle 2 must not prevent tubes 7-15
		// of that cycle from being scanned
		if cycle == 2 && tube == 7 {
			det.Stop()
		}

		return simulation.Position(tube), true
	}))

	det = detector.NewDetector(dev, testTiming(t))
	test.ExpectedSuccess(t, det.Run())

	// the stop request was honoured at the cycle boundary, not mid-cycle
	test.Equate(t, det.ScanCycles(), uint64(2))

	crit.Lock()
	defer crit.Unlock()

	// two full cycles, each reading tubes 0-15 in increasing order with
	// no repeats and no gaps
	test.Equate(t, len(reads), 2*detector.NumTubes)
	for i, rd := range reads {
		test.Equate(t, rd.cycle, uint64(1+i/detector.NumTubes))
		test.Equate(t, rd.tube, i%detector.NumTubes)
	}

	// every tube was decoded
	snap := det.Snapshot()
	for i, ts := range snap {
		test.Equate(t, ts.Position, i)
		test.Equate(t, ts.Eating, false)
	}
}

func TestFeedingDetection(t *testing.T) {
	var det *detector.Detector

	dev := simulation.NewDevice(simulation.ScriptFunc(func(cycle uint64, tube int) (simulation.Reading, bool) {
		if cycle == 2 && tube == detector.NumTubes-1 {
			det.Stop()
		}

		switch tube {
		case 0:
			// at the food on cycle 1 and feeding from cycle 2
			if cycle == 1 {
				return simulation.Position(1), true
			}
			return simulation.Feeding(), true

		case 1:
			// a feeding frame with a prior position other than 1 must
			// not be recognised as feeding
			if cycle == 1 {
				return simulation.Position(3), true
			}
			return simulation.Feeding(), true
		}

		return simulation.Position(0), true
	}))

	det = detector.NewDetector(dev, testTiming(t))
	test.ExpectedSuccess(t, det.Run())

	snap := det.Snapshot()

	test.Equate(t, snap[0].Position, 1)
	test.Equate(t, snap[0].Eating, true)

	test.Equate(t, snap[1].Position, 3)
	test.Equate(t, snap[1].Eating, false)
}

func TestReadFailureLeavesTubeUnchanged(t *testing.T) {
	var det *detector.Detector

	dev := simulation.NewDevice(simulation.ScriptFunc(func(cycle uint64, tube int) (simulation.Reading, bool) {
		if cycle == 2 && tube == detector.NumTubes-1 {
			det.Stop()
		}

		// tube 5 fails on cycle 2 only
		if cycle == 2 && tube == 5 {
			return simulation.Reading{}, false
		}

		// every tube reads the cycle number as its position
		return simulation.Position(int(cycle)), true
	}))

	det = detector.NewDetector(dev, testTiming(t))
	test.ExpectedSuccess(t, det.Run())

	snap := det.Snapshot()
	for i, ts := range snap {
		if i == 5 {
			// the failed read left the cycle 1 state in place
			test.Equate(t, ts.Position, 1)
		} else {
			test.Equate(t, ts.Position, 2)
		}
	}

	// a single failed tube is not a degraded acquisition
	test.Equate(t, det.DegradedCycles(), 0)
}

func TestDegradedAcquisition(t *testing.T) {
	var det *detector.Detector

	dev := simulation.NewDevice(simulation.ScriptFunc(func(cycle uint64, tube int) (simulation.Reading, bool) {
		if cycle == 2 && tube == detector.NumTubes-1 {
			det.Stop()
		}

		// three consecutive tubes fail on every cycle
		if tube >= 3 && tube <= 5 {
			return simulation.Reading{}, false
		}
		return simulation.Position(0), true
	}))

	det = detector.NewDetector(dev, testTiming(t))
	test.ExpectedSuccess(t, det.Run())

	// each of the two cycles was marked degraded exactly once
	test.Equate(t, det.ScanCycles(), uint64(2))
	test.Equate(t, det.DegradedCycles(), 2)
}

func TestFatalWrite(t *testing.T) {
	dev := simulation.NewDevice(simulation.Quiet())
	dev.FailWrites(curated.Errorf("simulation: scripted write failure"))

	det := detector.NewDetector(dev, testTiming(t))
	err := det.Run()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, detector.WriteError))

	// acquisition never got going
	test.Equate(t, det.ScanCycles(), uint64(0))
	snap := det.Snapshot()
	for _, ts := range snap {
		test.Equate(t, ts.Position, 0)
		test.Equate(t, ts.Eating, false)
	}
}
