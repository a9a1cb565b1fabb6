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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides support for sub-modes in the command line, of the
// form:
//
//	program [flags] [mode] [mode-flags] [arguments]
//
// Each mode has its own flag set. The idiomatic usage is to call NewArgs()
// with the command line arguments, AddSubModes() with the supported modes,
// Parse(), and then switch on the result of Mode(); inside each mode
// handler, call NewMode(), add the mode's flags and Parse() again.
//
// If the first non-flag argument does not match a listed sub-mode then the
// first sub-mode in the list is selected as the default.
package modalflag
