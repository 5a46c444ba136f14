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

// formatPCM is the fmt chunk tag for integer PCM.
const formatPCM = 1

// pcmReader is the part of gowav.Decoder the codec needs, to allow testing
type pcmReader interface {
	IsValidFile() bool
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

// Codec reads and writes integer PCM WAV files.
type Codec struct {
	Decoder
}

// Encode writes c as a WAV file. See Encode.
func (Codec) Encode(w io.WriteSeeker, c *audio.Clip) error {
	return Encode(w, c)
}

type Decoder struct{}

// Decode reads the whole data chunk of a PCM WAV file into a Clip.
//
// Any integer bit depth go-audio understands is kept as is; samples are not
// rescaled. Only mono and stereo files are accepted. A file without samples
// is reported as ErrNotWavFile.
func (Decoder) Decode(r io.ReadSeeker) (*audio.Clip, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, ErrOnlyIntegerPCM
	}

	return decodeHeader(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth))
}

func decodeHeader(dec pcmReader, sampleRate, channels, bitDepth int) (*audio.Clip, error) {
	if channels < 1 || channels > 2 {
		return nil, fault.Wrap(ErrUnsupportedChannels, fmsg.With(fmt.Sprintf("%d channels", channels)))
	}

	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fault.Wrap(ErrUnsupportedBitDepth, fmsg.With(fmt.Sprintf("%d bits", bitDepth)))
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if buf == nil || len(buf.Data) == 0 {
		return nil, fault.Wrap(ErrNotWavFile, fmsg.With("empty data chunk"))
	}

	return &audio.Clip{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
		Samples:    buf.Data,
	}, nil
}
