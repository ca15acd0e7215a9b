// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_audio reads the 16-bit PCM WAV clips the benchmark
// uploads and writes the float WAV files it receives back.
package internal_audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/rapidaai/speechsquad/protos"
)

const (
	wavFormatPCM       = 0x0001
	wavFormatIEEEFloat = 0x0003

	// FixedWAVHeaderSize is the canonical 44-byte RIFF header. Source files
	// are read through this layout and never rewritten.
	FixedWAVHeaderSize = 44
)

// FixedWAVHeader is the packed 44-byte RIFF/WAVE header.
type FixedWAVHeader struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     int32
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size int32   // 16 for PCM
	AudioFormat   int16   // 1 for PCM, 3 for IEEE float
	NumChannels   int16
	SampleRate    int32
	ByteRate      int32 // SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    int16 // NumChannels * BitsPerSample/8
	BitsPerSample int16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size int32
}

// ParseWAVHeader decodes and validates the fixed header. Only 16-bit
// LINEAR_PCM files are accepted.
func ParseWAVHeader(data []byte) (*FixedWAVHeader, error) {
	if len(data) < FixedWAVHeaderSize {
		return nil, fmt.Errorf("file is %d bytes, smaller than a wav header", len(data))
	}
	var header FixedWAVHeader
	if err := binary.Read(bytes.NewReader(data[:FixedWAVHeaderSize]), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading wav header: %w", err)
	}
	if string(header.ChunkID[:]) != "RIFF" {
		return nil, fmt.Errorf("unsupported container %q, expected RIFF", header.ChunkID)
	}
	if header.AudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("unsupported wav format tag %d, only LINEAR_PCM is supported", header.AudioFormat)
	}
	if header.BitsPerSample != 16 {
		return nil, fmt.Errorf("unsupported sample width %d, only 16-bit samples are supported", header.BitsPerSample)
	}
	return &header, nil
}

// Clip is one spoken question, immutable after load and shared read-only by
// every task that replays it.
type Clip struct {
	Data       []byte
	Filename   string
	SampleRate int
	Channels   int
	Encoding   protos.AudioEncoding
	QuestionID string
}

// LoadClip reads the file whole (header included, since the header bytes are
// part of the first upload) and validates its format.
func LoadClip(path, questionID string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read audio file %s: %w", path, err)
	}
	header, err := ParseWAVHeader(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse audio file header for file %s: %w", path, err)
	}
	return &Clip{
		Data:       data,
		Filename:   path,
		SampleRate: int(header.SampleRate),
		Channels:   int(header.NumChannels),
		Encoding:   protos.AudioEncoding_LINEAR_PCM,
		QuestionID: questionID,
	}, nil
}

// WriteFloat32WAV writes synthesized samples (raw little-endian float32
// bytes) as a mono IEEE-float WAV file.
func WriteFloat32WAV(path string, sampleRate int, samples []byte) error {
	header := FixedWAVHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     int32(36 + len(samples)),
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   wavFormatIEEEFloat,
		NumChannels:   1,
		SampleRate:    int32(sampleRate),
		ByteRate:      int32(sampleRate * 4),
		BlockAlign:    4,
		BitsPerSample: 32,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: int32(len(samples)),
	}

	var buf bytes.Buffer
	buf.Grow(FixedWAVHeaderSize + len(samples))
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("encoding wav header: %w", err)
	}
	buf.Write(samples)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing wav file %s: %w", path, err)
	}
	return nil
}
