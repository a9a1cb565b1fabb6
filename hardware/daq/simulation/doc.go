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

// Package simulation provides a software model of the multibeam detector
// for use in tests, in the performance mode, and for running the program
// without a physical device attached.
//
// The Device type implements the daq.Driver interface. It honours the
// detector's scan protocol: a reset pulse on the control port arms the
// shift register and the first clock rising edge after that selects tube
// 0, with each further rising edge advancing the selection. Reads of the
// data port return whatever the device's Script says the selected tube is
// reading on the current cycle, which makes scan outcomes fully
// deterministic.
package simulation
