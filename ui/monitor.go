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

package ui

import (
	"os"
	"strings"
	"time"

	"github.com/madlab/multibeam/hardware/detector"
	"github.com/madlab/multibeam/ui/easyterm"
)

// how often the monitor redraws the tube table.
const refreshInterval = 100 * time.Millisecond

// ansi sequence to clear the screen and home the cursor.
const clearScreen = "\033[2J\033[H"

// Monitor renders the live tube table to the terminal while an
// acquisition is running. It only ever reads copied snapshots of the tube
// table so rendering never holds up acquisition.
//
// The terminal is put into cbreak mode so that a single keypress ('q')
// can request a stop.
type Monitor struct {
	det  *detector.Detector
	term easyterm.Terminal
}

// NewMonitor is the preferred method of initialisation of the Monitor
// type.
func NewMonitor(det *detector.Detector) *Monitor {
	return &Monitor{det: det}
}

// Run renders the table every refresh interval until the done channel is
// closed, rendering one final time before returning so that the last
// cycle's results are visible.
func (mon *Monitor) Run(done <-chan struct{}) error {
	err := mon.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer mon.term.CleanUp()

	mon.term.CBreakMode()

	// keyboard listener. a stop request is the only input the monitor
	// responds to
	go func() {
		for {
			k, err := mon.term.ReadByte()
			if err != nil {
				return
			}
			switch k {
			case 'q', 'Q', easyterm.KeyInterrupt:
				mon.det.Stop()
			}
		}
	}()

	tick := time.NewTicker(refreshInterval)
	defer tick.Stop()

	for {
		select {
		case <-done:
			mon.render()
			return nil
		case <-tick.C:
			mon.render()
		}
	}
}

func (mon *Monitor) render() {
	s := strings.Builder{}
	s.WriteString(clearScreen)
	RenderTable(&s, mon.det.Snapshot(), mon.det.DegradedCycles())
	s.WriteString("press 'q' to stop acquisition\n")
	mon.term.Print(s.String())
}
