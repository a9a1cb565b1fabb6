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

func TestNormalFrame(t *testing.T) {
	// (D0,D1,D2,D3) = (1,0,1,0) is position 5
	next := decode(TubeState{}, Sample{Data: [4]bool{true, false, true, false}})
	test.Equate(t, next.Position, 5)
	test.Equate(t, next.Eating, false)

	// a normal frame always clears the feeding flag
	next = decode(TubeState{Position: 1, Eating: true}, Sample{Data: [4]bool{false, true, false, false}})
	test.Equate(t, next.Position, 2)
	test.Equate(t, next.Eating, false)

	// all lines low is no detection
	next = decode(TubeState{Position: 9}, Sample{})
	test.Equate(t, next.Position, 0)
	test.Equate(t, next.Eating, false)
}

func TestFeedingRecognition(t *testing.T) {
	// feeding is recognised only at position 1
	next := decode(TubeState{Position: 1}, Sample{Valid: true})
	test.Equate(t, next.Position, 1)
	test.Equate(t, next.Eating, true)

	// the precondition fails at any other position
	next = decode(TubeState{Position: 3}, Sample{Valid: true})
	test.Equate(t, next.Position, 3)
	test.Equate(t, next.Eating, false)

	next = decode(TubeState{}, Sample{Valid: true})
	test.Equate(t, next.Position, 0)
	test.Equate(t, next.Eating, false)
}

func TestValidityFrameLeavesStateAlone(t *testing.T) {
	// a validity frame with any data line high does not update the
	// position and does not clear an existing feeding indication
	prev := TubeState{Position: 1, Eating: true}
	next := decode(prev, Sample{Data: [4]bool{true, false, false, false}, Valid: true})
	test.Equate(t, next.Position, 1)
	test.Equate(t, next.Eating, true)

	// nor does a feeding frame for a tube that isn't feeding set the flag
	// when the position precondition fails
	prev = TubeState{Position: 7}
	next = decode(prev, Sample{Valid: true})
	test.Equate(t, next.Position, 7)
	test.Equate(t, next.Eating, false)
}

func TestSampleWidth(t *testing.T) {
	_, err := NewSample([]bool{true, false, true})
	test.ExpectedFailure(t, err)

	smp, err := NewSample([]bool{true, false, true, false, true})
	test.ExpectedSuccess(t, err)
	test.Equate(t, smp.Valid, true)
	test.Equate(t, smp.Data[0], true)
	test.Equate(t, smp.Data[3], false)
}
