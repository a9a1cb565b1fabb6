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

package simulation_test

import (
	"testing"
	"time"

	"github.com/madlab/multibeam/hardware/daq"
	"github.com/madlab/multibeam/hardware/daq/simulation"
	"github.com/madlab/multibeam/test"
)

// drive one reset pulse followed by n clock rising edges.
func pulse(t *testing.T, dev *simulation.Device, clocks int) {
	t.Helper()

	write := func(reset bool, clock bool) {
		t.Helper()
		err := dev.WriteLines(daq.PortControl, []bool{reset, clock}, time.Millisecond)
		test.ExpectedSuccess(t, err)
	}

	write(true, false)
	write(false, false)
	for i := 0; i < clocks; i++ {
		write(false, true)
		write(false, false)
	}
}

func TestTubeSelection(t *testing.T) {
	// each tube reads its own index as a position
	dev := simulation.NewDevice(simulation.ScriptFunc(func(_ uint64, tube int) (simulation.Reading, bool) {
		return simulation.Position(tube), true
	}))

	// reset plus one clock edge selects tube 0
	pulse(t, dev, 1)

	levels, err := dev.ReadLines(daq.PortData, daq.DataLineCount, time.Millisecond)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(levels), daq.DataLineCount)
	for i := 0; i < 4; i++ {
		test.Equate(t, levels[i], false)
	}

	// seven more edges advances the selection to tube 7 (0b0111)
	for i := 0; i < 7; i++ {
		err = dev.WriteLines(daq.PortControl, []bool{false, true}, time.Millisecond)
		test.ExpectedSuccess(t, err)
		err = dev.WriteLines(daq.PortControl, []bool{false, false}, time.Millisecond)
		test.ExpectedSuccess(t, err)
	}

	levels, err = dev.ReadLines(daq.PortData, daq.DataLineCount, time.Millisecond)
	test.ExpectedSuccess(t, err)
	test.Equate(t, levels[0], true)
	test.Equate(t, levels[1], true)
	test.Equate(t, levels[2], true)
	test.Equate(t, levels[3], false)
	test.Equate(t, levels[daq.DataValidLine], false)
}

func TestCycleNumbering(t *testing.T) {
	dev := simulation.NewDevice(simulation.Quiet())
	test.Equate(t, dev.Cycle(), uint64(0))

	pulse(t, dev, 16)
	test.Equate(t, dev.Cycle(), uint64(1))

	pulse(t, dev, 16)
	test.Equate(t, dev.Cycle(), uint64(2))
}

func TestScriptedReadFailure(t *testing.T) {
	dev := simulation.NewDevice(simulation.ScriptFunc(func(_ uint64, tube int) (simulation.Reading, bool) {
		if tube == 0 {
			return simulation.Reading{}, false
		}
		return simulation.Position(1), true
	}))

	pulse(t, dev, 1)

	_, err := dev.ReadLines(daq.PortData, daq.DataLineCount, time.Millisecond)
	test.ExpectedFailure(t, err)

	err = dev.WriteLines(daq.PortControl, []bool{false, true}, time.Millisecond)
	test.ExpectedSuccess(t, err)

	_, err = dev.ReadLines(daq.PortData, daq.DataLineCount, time.Millisecond)
	test.ExpectedSuccess(t, err)
}

func TestClosedDevice(t *testing.T) {
	dev := simulation.NewDevice(simulation.Quiet())
	test.ExpectedSuccess(t, dev.Close())

	err := dev.WriteLines(daq.PortControl, []bool{false, false}, time.Millisecond)
	test.ExpectedFailure(t, err)

	_, err = dev.ReadLines(daq.PortData, daq.DataLineCount, time.Millisecond)
	test.ExpectedFailure(t, err)
}
