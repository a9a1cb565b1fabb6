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
	"fmt"
	"io"

	"github.com/madlab/multibeam/hardware/detector"
)

// RenderTable writes the tube table in its traditional layout: one row
// per tube with the tube's position and a summary of its activity.
func RenderTable(output io.Writer, snap [detector.NumTubes]detector.TubeState, degradedCycles int) {
	fmt.Fprintf(output, "Multibeam Activity Detector - Real-time Monitoring\n")
	fmt.Fprintf(output, "===============================================\n\n")
	fmt.Fprintf(output, "Tube | Position | Status  | Activity\n")
	fmt.Fprintf(output, "-----|----------|---------|----------\n")

	for i, ts := range snap {
		fmt.Fprintf(output, "%4d | ", i+1)

		switch {
		case ts.Eating:
			// when eating, position is always 1
			fmt.Fprintf(output, "%8d | EATING  | Feeding at position 1\n", 1)
		case ts.Position > 0:
			fmt.Fprintf(output, "%8d | ACTIVE  | Moving at position %d\n", ts.Position, ts.Position)
		default:
			fmt.Fprintf(output, "%8s | IDLE    | No activity detected\n", "-")
		}
	}

	fmt.Fprintf(output, "\n")
	fmt.Fprintf(output, "Legend:\n")
	fmt.Fprintf(output, "- EATING: Fly is feeding at position 1\n")
	fmt.Fprintf(output, "- ACTIVE: Fly is moving, position indicates beam location\n")
	fmt.Fprintf(output, "- IDLE: No fly detected at this tube\n\n")

	if degradedCycles > 0 {
		fmt.Fprintf(output, "WARNING: acquisition degraded in %d cycle(s); see log\n", degradedCycles)
	}
}
