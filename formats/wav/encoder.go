// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/beatglitch/audio"
)

// Encode writes c as a PCM WAV file using the clip's own sample rate,
// channel count and bit depth, so a decoded clip round-trips unchanged.
//
// The header sizes are patched when the encoder closes, which is why w must
// be seekable.
func Encode(w io.WriteSeeker, c *audio.Clip) error {
	if c == nil || len(c.Samples) == 0 {
		return audio.ErrEmptyClip
	}

	if c.Channels < 1 || c.Channels > 2 {
		return fault.Wrap(ErrUnsupportedChannels, fmsg.With(fmt.Sprintf("%d channels", c.Channels)))
	}

	switch c.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fault.Wrap(ErrUnsupportedBitDepth, fmsg.With(fmt.Sprintf("%d bits", c.BitDepth)))
	}

	enc := gowav.NewEncoder(w, c.SampleRate, c.BitDepth, c.Channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: c.Channels,
			SampleRate:  c.SampleRate,
		},
		Data:           c.Samples,
		SourceBitDepth: c.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
