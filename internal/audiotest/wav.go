// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAVBytes builds a canonical 44-byte-header WAV file by hand.
//
// audioFormat is the fmt chunk format tag (1 = PCM, 3 = IEEE float).
// Samples are written little endian at bitsPerSample; only 8, 16, 24 and
// 32 are meaningful. Building the bytes without go-audio lets tests feed
// the decoder files go-audio itself would refuse to produce.
func WAVBytes(audioFormat, sampleRate, channels, bitsPerSample int, samples []int) []byte {
	buf := new(bytes.Buffer)

	bytesPerSample := bitsPerSample / 8
	byteRate := uint32(sampleRate * channels * bytesPerSample)
	blockAlign := uint16(channels * bytesPerSample)
	dataSize := uint32(len(samples) * bytesPerSample)
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(audioFormat))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		switch bytesPerSample {
		case 1:
			buf.WriteByte(byte(s + 128))
		case 2:
			binary.Write(buf, binary.LittleEndian, int16(s))
		case 3:
			v := uint32(int32(s))
			buf.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16)})
		case 4:
			binary.Write(buf, binary.LittleEndian, int32(s))
		}
	}

	return buf.Bytes()
}
