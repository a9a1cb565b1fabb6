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

package performance

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/madlab/multibeam/curated"
	"github.com/madlab/multibeam/hardware/daq/simulation"
	"github.com/madlab/multibeam/hardware/detector"
)

// Sentinal error returned by Check().
const CheckError = "performance: %v"

// Check measures scan throughput against the simulated device.
//
// The acquisition runs for the specified duration and the achieved cycle
// rate is compared with the nominal rate implied by the timing
// parameters. A large shortfall means the host cannot hold the scan
// timing at this timebase. A cpu and/or memory profile can be produced
// at the same time, as defined by the Profile argument.
func Check(output io.Writer, profile Profile, timing detector.Timing, duration string, structFile string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	det := detector.NewDetector(simulation.NewDevice(simulation.Quiet()), timing)

	runner := func() error {
		time.AfterFunc(dur, det.Stop)
		return det.Run()
	}

	err = RunProfiler(profile, "multibeam", runner)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	cycles := det.ScanCycles()
	rate := float64(cycles) / dur.Seconds()
	nominal := 1.0 / timing.CycleWidth().Seconds()

	fmt.Fprintf(output, "%d scan cycles in %v\n", cycles, dur)
	fmt.Fprintf(output, "%.2f cycles/sec (nominal %.2f; %.1f%%)\n", rate, nominal, 100*rate/nominal)

	if structFile != "" {
		err = StructDump(det, structFile)
		if err != nil {
			return curated.Errorf(CheckError, err)
		}
	}

	return nil
}

// StructDump writes a graphviz visualisation of the acquisition's end
// state: the timing parameters, the tube table and the cycle count.
func StructDump(det *detector.Detector, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	dump := struct {
		Timing detector.Timing
		Tubes  [detector.NumTubes]detector.TubeState
		Cycles uint64
	}{
		Timing: det.Timing(),
		Tubes:  det.Snapshot(),
		Cycles: det.ScanCycles(),
	}

	memviz.Map(f, &dump)
	return nil
}
