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

// Package logger is the central log for the application. There is only one
// log and it is accessible through the package level functions. Entries are
// tagged with the originating sub-system ("daq", "detector", "ui", etc.)
// and identical consecutive entries are collapsed into a single entry with
// a repeat count.
//
// The log is of a fixed maximum length with older entries being discarded
// as required. The SetEcho() function can be used to also forward new
// entries to an io.Writer as they arrive, which is useful for watching a
// live acquisition from a second terminal.
package logger
