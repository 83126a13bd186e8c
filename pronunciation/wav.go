// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pronunciation

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotWAV         = errors.New("audio is not a RIFF/WAVE file")
	ErrNoFormatChunk  = errors.New("wav file has no fmt chunk")
	ErrNoDataChunk    = errors.New("wav file has no data chunk")
	ErrUnsupportedWAV = errors.New("wav file is not linear PCM")
)

const (
	formatPCM        = 0x0001
	formatExtensible = 0xFFFE
)

// WAV is a parsed linear PCM wave file
type WAV struct {
	SampleRate    uint32
	BitsPerSample uint8
	Channels      uint8
	// Data is the raw sample bytes of the data chunk, header excluded
	Data []byte
}

// Duration is the playback length of Data
func (w *WAV) Duration() time.Duration {
	bytesPerSecond := int64(w.SampleRate) * int64(w.Channels) * int64(w.BitsPerSample) / 8
	if bytesPerSecond == 0 {
		return 0
	}
	return time.Duration(int64(len(w.Data)) * int64(time.Second) / bytesPerSecond)
}

// ParseWAV reads the fmt and data chunks of a RIFF/WAVE file.
// Unknown chunks (LIST, fact, ...) are skipped.
func ParseWAV(b []byte) (*WAV, error) {
	if len(b) < 12 || !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return nil, ErrNotWAV
	}

	var w WAV
	var haveFormat bool
	pos := 12
	for pos+8 <= len(b) {
		id := string(b[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(b[pos+4 : pos+8]))
		body := pos + 8
		end := body + size
		if size < 0 || end > len(b) {
			// Streaming encoders leave the data size unset; take the rest
			if id != "data" {
				return nil, fmt.Errorf("wav chunk %q overruns file", id)
			}
			end = len(b)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("wav fmt chunk too short: %d bytes", size)
			}
			format := binary.LittleEndian.Uint16(b[body : body+2])
			if format == formatExtensible && size >= 26 {
				// First two bytes of the SubFormat GUID carry the real tag
				format = binary.LittleEndian.Uint16(b[body+24 : body+26])
			}
			if format != formatPCM {
				return nil, fmt.Errorf("%w (format tag 0x%04x)", ErrUnsupportedWAV, format)
			}
			channels := binary.LittleEndian.Uint16(b[body+2 : body+4])
			bits := binary.LittleEndian.Uint16(b[body+14 : body+16])
			if channels == 0 || channels > 255 || bits == 0 || bits > 255 {
				return nil, fmt.Errorf("%w (channels %d, bits %d)", ErrUnsupportedWAV, channels, bits)
			}
			w.Channels = uint8(channels)
			w.SampleRate = binary.LittleEndian.Uint32(b[body+4 : body+8])
			w.BitsPerSample = uint8(bits)
			haveFormat = true
		case "data":
			if !haveFormat {
				return nil, ErrNoFormatChunk
			}
			w.Data = b[body:end]
			return &w, nil
		}

		// Chunks are word aligned
		pos = end + size%2
	}

	if !haveFormat {
		return nil, ErrNoFormatChunk
	}
	return nil, ErrNoDataChunk
}
