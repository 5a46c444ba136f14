package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrOnlyIntegerPCM      = errors.New("only integer PCM supported")
	ErrUnsupportedChannels = errors.New("only mono and stereo supported")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
