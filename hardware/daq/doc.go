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

// Package daq defines the interface to the digital acquisition device that
// connects the detector to the host: the Driver interface and the fixed
// port/line topology of the multibeam detector.
//
// The detector package drives a Driver implementation; it does not care
// which one. The simulation package provides a software implementation
// suitable for testing and for running the program without hardware.
package daq
