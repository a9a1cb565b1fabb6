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
	"testing"

	"github.com/madlab/multibeam/test"
)

func TestPhaseBus(t *testing.T) {
	bus := &phaseBus{}

	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.publish(Phase{Kind: ResetAsserted, Cycle: 1})
	bus.publish(Phase{Kind: ResetReleased, Cycle: 1})
	bus.publish(Phase{Kind: ClockRose, Tube: 0, Cycle: 1})

	// both subscribers see every event in publication order
	for _, events := range []<-chan Phase{a, b} {
		ph := <-events
		test.Equate(t, int(ph.Kind), int(ResetAsserted))
		ph = <-events
		test.Equate(t, int(ph.Kind), int(ResetReleased))
		ph = <-events
		test.Equate(t, int(ph.Kind), int(ClockRose))
		test.Equate(t, ph.Tube, 0)
	}

	bus.close()
	_, ok := <-a
	test.ExpectedFailure(t, ok)

	// close is idempotent and a late subscription receives a closed
	// channel rather than one that never delivers
	bus.close()
	c := bus.Subscribe()
	_, ok = <-c
	test.ExpectedFailure(t, ok)
}
