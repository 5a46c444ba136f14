// SPDX-License-Identifier: EPL-2.0

package glitch_test

import (
	"fmt"
	"slices"

	"github.com/ik5/beatglitch/glitch"
)

// Example_apply shows a hand-written pattern stuttering a fragment.
func Example_apply() {
	source := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	output := slices.Clone(source)

	// play two samples twice, then one sample four times
	pattern := glitch.Pattern{{Length: 2, Repeat: 2}, {Length: 1, Repeat: 4}}
	written := glitch.Apply(source, output, 2, pattern, 8)

	fmt.Println("Written:", written)
	fmt.Println("Output:", output)
	// Output:
	// Written: 8
	// Output: [0 1 2 3 2 3 2 2 2 2 10 11]
}

// Example_generate shows full subdivision down to the depth floor.
func Example_generate() {
	rng := glitch.NewRand(1)

	pattern := glitch.Generate(rng, 1, 1024, 1, 256)

	fmt.Println("Pattern:", pattern)
	fmt.Println("Samples:", pattern.Samples())
	// Output:
	// Pattern: [256x4 256x4 256x4 256x4]
	// Samples: 4096
}

// Example_calibrate marks every beat of a short buffer with noise.
func Example_calibrate() {
	source := make([]int, 2048)
	output := slices.Clone(source)

	s, err := glitch.NewSweeper(glitch.Config{
		SamplesPerBeat: 1024,
		Beats:          2,
		Mode:           glitch.ModeCalibrate,
	}, glitch.NewRand(1))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	report := s.Run(source, output)

	fmt.Println("Mode:", report.Mode)
	fmt.Println("Bursts:", report.Events)
	fmt.Println("Samples written:", report.SamplesWritten)
	// Output:
	// Mode: calibrate
	// Bursts: 2
	// Samples written: 1024
}
