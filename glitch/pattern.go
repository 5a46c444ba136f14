// SPDX-License-Identifier: EPL-2.0

package glitch

import (
	"fmt"
	"strings"
)

// DefaultDepthFloor is the segment length, in samples, at or below which a
// node is never split again.
const DefaultDepthFloor = 128

// Segment is one run of a pattern: Length samples from the start of the
// source fragment, played Repeat times back to back.
type Segment struct {
	Length int
	Repeat int
}

// Pattern is a run-length encoded list of segments in playback order.
type Pattern []Segment

// Samples is the number of output samples the pattern describes before any
// budget is applied.
func (p Pattern) Samples() int {
	total := 0
	for _, s := range p {
		total += s.Length * s.Repeat
	}
	return total
}

// Leaves is the number of individual fragment plays in the pattern.
func (p Pattern) Leaves() int {
	total := 0
	for _, s := range p {
		total += s.Repeat
	}
	return total
}

func (p Pattern) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%dx%d", s.Length, s.Repeat)
	}
	b.WriteByte(']')
	return b.String()
}

type node struct {
	duration int
	repeat   int
}

// Generate carves initialDuration samples into a stutter pattern.
//
// Every node draws once from rng. A node becomes a leaf when the draw is at
// or above recurseProbability, when its duration is at or below depthFloor,
// or when it is a single sample long; otherwise it is replaced by two nodes
// of half the duration (floor division) and twice the repeat count.
//
// Nodes are kept on an explicit LIFO stack so neither depth nor call stack
// grows with adversarial input; the pattern comes out in left-to-right
// subdivision order. Generate returns nil for a non-positive initialDuration.
func Generate(rng Rand, recurseProbability float64, initialDuration, initialRepeat, depthFloor int) Pattern {
	if initialDuration <= 0 {
		return nil
	}

	var out Pattern
	stack := []node{{duration: initialDuration, repeat: initialRepeat}}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if rng.Float64() >= recurseProbability || n.duration <= depthFloor || n.duration <= 1 {
			out = append(out, Segment{Length: n.duration, Repeat: n.repeat})
			continue
		}

		child := node{duration: n.duration / 2, repeat: n.repeat * 2}
		stack = append(stack, child, child)
	}

	return out
}
