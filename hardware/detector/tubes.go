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
	"sync"
	"sync/atomic"
)

// NumTubes is the number of tubes in the detector. The topology is fixed
// by the hardware: sixteen tubes multiplexed onto the five data lines.
const NumTubes = 16

// TubeState is the decoded state of a single tube.
type TubeState struct {
	// the last decoded beam position. zero means no detection
	Position int

	// whether the fly is feeding. only ever recognised at position 1
	Eating bool
}

// tube pairs a TubeState with its own lock. tubes are independent units
// of ownership; updating one never serialises against a read of another.
type tube struct {
	crit  sync.RWMutex
	state TubeState
}

// Tubes is the table of all sixteen tube states. The sampler is the only
// writer. Any number of concurrent readers are served through copied
// snapshots, never through direct references into the table.
type Tubes struct {
	tubes [NumTubes]tube

	// number of cycles in which acquisition was degraded (three or more
	// consecutive read failures). read/written atomically
	degraded uint32
}

// NewTubes is the preferred method of initialisation of the Tubes type.
// Every tube starts with no detection and no feeding.
func NewTubes() *Tubes {
	return &Tubes{}
}

// State returns a copy of a single tube's state.
func (tb *Tubes) State(t int) TubeState {
	tb.tubes[t].crit.RLock()
	defer tb.tubes[t].crit.RUnlock()
	return tb.tubes[t].state
}

// Snapshot returns a copy of the state of every tube. The copy is
// immutable from the caller's point of view and can be rendered without
// holding up acquisition.
func (tb *Tubes) Snapshot() [NumTubes]TubeState {
	var snap [NumTubes]TubeState
	for i := range tb.tubes {
		snap[i] = tb.State(i)
	}
	return snap
}

// apply a decoded sample to a tube.
func (tb *Tubes) apply(t int, smp Sample) {
	tb.tubes[t].crit.Lock()
	defer tb.tubes[t].crit.Unlock()
	tb.tubes[t].state = decode(tb.tubes[t].state, smp)
}

// DegradedCycles returns the number of cycles in which three or more
// consecutive tube reads failed. How to surface this to the operator is a
// presentation decision; the table only counts.
func (tb *Tubes) DegradedCycles() int {
	return int(atomic.LoadUint32(&tb.degraded))
}

func (tb *Tubes) recordDegradedCycle() {
	atomic.AddUint32(&tb.degraded, 1)
}
