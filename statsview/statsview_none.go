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

//go:build !statsview
// +build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Address of the http server. Empty when the statsview build constraint is
// not present.
const Address = ""

// Launch does nothing. The statsview build constraint is not present.
func Launch(output io.Writer) {
	fmt.Fprintln(output, "statsview not available in this build")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
