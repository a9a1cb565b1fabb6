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
	"github.com/madlab/multibeam/curated"
	"github.com/madlab/multibeam/hardware/daq"
)

// Sample is one raw reading of the data port: the four position-code bits
// (least significant first) and the data-valid flag.
type Sample struct {
	Data  [4]bool
	Valid bool
}

// Sentinal error returned by NewSample().
const BadSample = "sample: unexpected line count (%d)"

// NewSample interprets the level slice returned by a data port read.
func NewSample(levels []bool) (Sample, error) {
	if len(levels) != daq.DataLineCount {
		return Sample{}, curated.Errorf(BadSample, len(levels))
	}

	smp := Sample{Valid: levels[daq.DataValidLine]}
	copy(smp.Data[:], levels)
	return smp, nil
}

// decode produces a tube's next state from its previous state and a new
// sample. There are only two branches:
//
// A normal frame (DV low) is a position reading. The position code is
// binary, D0 least significant. Any feeding indication is cleared.
//
// A validity frame (DV high) is a feeding indication. The position is left
// alone. Feeding is recognised only when the position code is zero and the
// tube's last decoded position was exactly 1, which is where the food is.
// On any other validity frame the feeding flag is left as it was.
func decode(prev TubeState, smp Sample) TubeState {
	if !smp.Valid {
		next := TubeState{}
		for i, d := range smp.Data {
			if d {
				next.Position |= 1 << i
			}
		}
		return next
	}

	next := prev
	if !smp.Data[0] && !smp.Data[1] && !smp.Data[2] && !smp.Data[3] && prev.Position == 1 {
		next.Eating = true
	}
	return next
}
