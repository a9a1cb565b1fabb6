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

// Package detector implements the multiplexed-scan protocol of the
// multibeam activity detector: sixteen tubes sharing five data lines,
// scanned by a reset pulse followed by sixteen clock pulses on the two
// control lines.
//
// The scan is the work of two concurrent activities. The signal generator
// steps through the phases of the scan sequence, making one physical write
// per phase transition and holding each level for its nominal duration.
// The sampler follows one step behind, reading each tube's data lines
// strictly inside that tube's clock window and feeding the result to the
// decoder.
//
// The two activities never touch shared mutable state. The generator
// publishes every phase transition as a tagged event on a subscription
// bus; the sampler is a reactor over that event stream. The stream also
// gives the sampler its cycle anchor: no tube is sampled until the cycle's
// reset pulse has been observed.
//
// All phase durations derive from a single configurable base unit, the
// timebase (Tb): a 3Tb reset pulse and 1Tb recovery, then per tube a 2.5Tb
// clock-high and 2.5Tb clock-low, with sampling after a 1Tb settling delay
// and bounded by a 2Tb read window.
//
// The decoded results live in the Tubes table, one entry per tube, updated
// exactly once per tube per cycle in tube order. Presentation code reads
// the table through copied snapshots and never blocks acquisition.
package detector
