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

package curated_test

import (
	"testing"

	"github.com/madlab/multibeam/curated"
	"github.com/madlab/multibeam/test"
)

const testPattern = "test: %v"

func TestIdentity(t *testing.T) {
	e := curated.Errorf(testPattern, "flibble")
	test.Equate(t, e.Error(), "test: flibble")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern: %v"))

	// a plain error is never curated
	test.ExpectedFailure(t, curated.IsAny(nil))
}

func TestChain(t *testing.T) {
	e := curated.Errorf(testPattern, "flibble")
	f := curated.Errorf("wrapped: %v", e)

	// Is() does not look into the chain but Has() does
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, "wrapped: %v"))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", "flibble"))
	test.Equate(t, e.Error(), "error: flibble")
}
