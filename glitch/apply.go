// SPDX-License-Identifier: EPL-2.0

package glitch

// Apply overwrites output starting at start by replaying the source fragment
// that begins at start, as described by pattern.
//
// Every repetition of a segment reads source[start], source[start+1], ...
// again while the write cursor keeps moving forward, which is what makes the
// fragment stutter. The event stops as soon as more than budget samples have
// been written, so up to budget+1 samples may land. Writes that would fall
// outside output end the event early; reads outside source are skipped.
//
// Apply returns the number of samples written.
func Apply(source, output []int, start int, pattern Pattern, budget int) int {
	written := 0
	cursor := 0

	for _, seg := range pattern {
		for range seg.Repeat {
			for off := range seg.Length {
				dst := start + cursor
				if dst < 0 || dst >= len(output) {
					// The cursor only moves on writes, nothing later can land.
					return written
				}

				src := start + off
				if src < 0 || src >= len(source) {
					continue
				}

				output[dst] = source[src]
				cursor++
				written++

				if written > budget {
					return written
				}
			}
		}
	}

	return written
}
