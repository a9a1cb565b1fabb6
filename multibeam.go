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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/madlab/multibeam/hardware/daq"
	"github.com/madlab/multibeam/hardware/daq/simulation"
	"github.com/madlab/multibeam/hardware/detector"
	"github.com/madlab/multibeam/logger"
	"github.com/madlab/multibeam/modalflag"
	"github.com/madlab/multibeam/performance"
	"github.com/madlab/multibeam/statsview"
	"github.com/madlab/multibeam/ui"
	"github.com/madlab/multibeam/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)

		// the log may have more information about what went wrong
		logger.Tail(os.Stderr, 10)

		os.Exit(20)
	}
}

// selectTiming derives the timing parameters from the timebase flag,
// falling back to the default timebase when the preset is not recognised.
func selectTiming(preset string) (detector.Timing, error) {
	unit, ok := detector.ParsePreset(preset)
	if !ok {
		if preset == "" {
			logger.Log("main", "using default timebase (0.2ms)")
		} else {
			logger.Logf("main", "unrecognised timebase (%s); using default (0.2ms)", preset)
		}
	}
	return detector.NewTiming(unit)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	timebase := md.AddString("timebase", "", "timebase preset in milliseconds: 0.01, 0.1, 1.0, 10.0")
	sim := md.AddBool("sim", false, "run against the simulated device")
	log := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	timing, err := selectTiming(*timebase)
	if err != nil {
		return err
	}

	var drv daq.Driver
	if *sim {
		drv = simulation.NewDevice(simulation.Quiet())
	} else {
		drv, err = daq.Open()
		if err != nil {
			return err
		}
	}

	det := detector.NewDetector(drv, timing)

	// #ctrlc requests a stop, which is honoured at the next cycle
	// boundary. a second interrupt ends the process immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		det.Stop()
		<-intChan
		os.Exit(10)
	}()

	done := make(chan struct{})
	var runErr error
	go func() {
		runErr = det.Run()
		close(done)
	}()

	err = ui.NewMonitor(det).Run(done)
	if err != nil {
		det.Stop()
		<-done
		return err
	}

	return runErr
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	timebase := md.AddString("timebase", "", "timebase preset in milliseconds: 0.01, 0.1, 1.0, 10.0")
	duration := md.AddString("duration", "5s", "run length of measurement")
	profile := md.AddString("profile", "none", "profile the measurement: none, cpu, mem, all")
	structFile := md.AddString("memviz", "", "write end-of-run structure graph to file (graphviz)")
	log := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	timing, err := selectTiming(*timebase)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, timing, *duration, *structFile)
}
