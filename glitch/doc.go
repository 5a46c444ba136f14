// SPDX-License-Identifier: EPL-2.0

// Package glitch implements the beat-synchronized stutter effect.
//
// The effect has two parts. Generate turns a duration into a Pattern by
// repeatedly halving it at random, and Apply writes a pattern into an output
// buffer by replaying a short fragment of the untouched source:
//
//	rng := glitch.NewRand(1)
//	pattern := glitch.Generate(rng, 0.6, 11025, 1, glitch.DefaultDepthFloor)
//	written := glitch.Apply(source, output, start, pattern, 11025)
//
// A pattern is run-length encoded. The segment {Length: 2756, Repeat: 4}
// means "play the first 2756 samples of the fragment four times in a row".
// Deeper subdivisions give shorter segments with higher repeat counts, which
// is what produces the rapid retrigger sound.
//
// # Sweeping a Track
//
// Sweeper drives both parts over a beat grid. For each beat it flips a coin
// against GlitchProbability, picks an event budget from the catalog, then
// generates and applies a pattern at the beat's start index:
//
//	catalog, err := tempo.Catalog(bpm, clip.SamplesPerSecond())
//	if err != nil {
//	    // Handle error
//	}
//
//	s, err := glitch.NewSweeper(glitch.Config{
//	    SamplesPerBeat:     grid.SamplesPerBeat,
//	    Beats:              grid.Beats,
//	    Catalog:            catalog,
//	    RecurseProbability: 0.5,
//	    GlitchProbability:  0.3,
//	}, glitch.NewRand(seed))
//	if err != nil {
//	    // Handle error
//	}
//	report := s.Run(source, output)
//
// ModeCalibrate replaces every beat with a short noise burst instead, so a
// wrong tempo can be heard immediately.
//
// # Randomness
//
// All draws come from the Rand passed in. Seeded runs are reproducible.
//
// # Bounds
//
// Writes never leave the output buffer: an event that runs into the end of
// the buffer is cut short. An event may write one sample more than its
// budget because the budget is checked after each write.
package glitch
