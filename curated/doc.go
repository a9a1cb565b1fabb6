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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values just like fmt.Errorf().
//
// The pattern string acts as the error's identity. The Is() function checks
// whether an error is a curated error with a specific pattern; the Has()
// function checks whether the pattern occurs anywhere in the error chain.
// Patterns intended for identity checks should be stored as const strings
// next to the code that creates them.
//
// The Error() function normalises the message chain so that adjacent
// duplicate parts are removed. This means packages can wrap errors freely
// without worrying about stuttering messages of the "daq: daq: timeout"
// kind.
package curated
