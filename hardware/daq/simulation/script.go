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

package simulation

// Reading is what the simulated detector presents on the data port for one
// tube: the four position-code lines and the data-valid flag.
type Reading struct {
	Data  [4]bool
	Valid bool
}

// Position returns the Reading for a fly detected at beam position p. A
// position of 0 means no detection.
func Position(p int) Reading {
	r := Reading{}
	for i := 0; i < len(r.Data); i++ {
		r.Data[i] = p&(1<<i) != 0
	}
	return r
}

// Feeding returns the Reading produced by the detector's feeding monitor:
// data-valid asserted with all position lines low.
func Feeding() Reading {
	return Reading{Valid: true}
}

// Script decides what the simulated device presents for a given tube on a
// given scan cycle. Cycles are numbered from 1; the first reset pulse
// starts cycle 1. Returning ok == false causes the read for that tube to
// fail with a timeout, as a stuck or disconnected tube would.
type Script interface {
	Reading(cycle uint64, tube int) (r Reading, ok bool)
}

// ScriptFunc allows an ordinary function to be used as a Script.
type ScriptFunc func(cycle uint64, tube int) (Reading, bool)

// Reading implements the Script interface.
func (f ScriptFunc) Reading(cycle uint64, tube int) (Reading, bool) {
	return f(cycle, tube)
}

// Quiet is a Script for a detector with no flies in it. Every tube reads
// position zero on every cycle.
func Quiet() Script {
	return ScriptFunc(func(_ uint64, _ int) (Reading, bool) {
		return Position(0), true
	})
}
