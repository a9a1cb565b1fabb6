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

// Package performance measures whether the host can hold the scan timing
// at a given timebase. The acquisition runs against the simulated device
// for a fixed duration and the achieved cycle rate is compared with the
// nominal rate implied by the timing parameters.
//
// CPU and memory profiles of the acquisition can be produced at the same
// time, and the end state of the acquisition can be dumped as a graphviz
// file for inspection.
package performance
