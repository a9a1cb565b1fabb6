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
	"sync"
)

// PhaseKind labels a transition of the scan protocol.
type PhaseKind int

// List of valid PhaseKind values, in the order the generator produces
// them within one cycle.
const (
	// the reset pulse has been asserted. marks the start of a cycle
	ResetAsserted PhaseKind = iota

	// the reset pulse has been released
	ResetReleased

	// a tube's clock pulse has started
	ClockRose

	// a tube's clock pulse has ended
	ClockFell
)

func (k PhaseKind) String() string {
	switch k {
	case ResetAsserted:
		return "reset asserted"
	case ResetReleased:
		return "reset released"
	case ClockRose:
		return "clock rose"
	case ClockFell:
		return "clock fell"
	}
	return "unknown phase"
}

// Phase is one tagged transition of the scan protocol, published by the
// signal generator as it happens. The Tube field is meaningful only for
// the ClockRose and ClockFell kinds.
type Phase struct {
	Kind  PhaseKind
	Tube  int
	Cycle uint64
}

func (ph Phase) String() string {
	switch ph.Kind {
	case ClockRose, ClockFell:
		return fmt.Sprintf("cycle %d: %v (tube %d)", ph.Cycle, ph.Kind, ph.Tube)
	}
	return fmt.Sprintf("cycle %d: %v", ph.Cycle, ph.Kind)
}

// the number of phase transitions in one complete scan cycle.
const phasesPerCycle = 2 + 2*NumTubes

// subscriber channels are buffered deeply enough that the generator can
// complete at least two full cycles without any subscriber draining. this
// is what lets the generator finish an in-flight cycle after a stop or
// after the sampler has failed, without blocking.
const phaseQueueDepth = 3 * phasesPerCycle

// phaseBus fans phase transitions out to any number of subscribers. the
// generator is the only publisher.
type phaseBus struct {
	crit   sync.Mutex
	subs   []chan Phase
	closed bool
}

// Subscribe returns a channel carrying every phase transition published
// after the call. The channel is closed when the generator stops.
//
// Subscribers must keep up with the generator. A subscriber that lags by
// more than the channel buffer will block the generator and stall the
// scan; the buffer is deep enough that this can only happen if the
// subscriber has stopped draining entirely.
func (bus *phaseBus) Subscribe() <-chan Phase {
	bus.crit.Lock()
	defer bus.crit.Unlock()

	ch := make(chan Phase, phaseQueueDepth)
	if bus.closed {
		close(ch)
		return ch
	}
	bus.subs = append(bus.subs, ch)
	return ch
}

func (bus *phaseBus) publish(ph Phase) {
	bus.crit.Lock()
	subs := bus.subs
	bus.crit.Unlock()

	for _, ch := range subs {
		ch <- ph
	}
}

func (bus *phaseBus) close() {
	bus.crit.Lock()
	defer bus.crit.Unlock()

	if bus.closed {
		return
	}
	bus.closed = true
	for _, ch := range bus.subs {
		close(ch)
	}
	bus.subs = nil
}
