// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_task

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	internal_audio "github.com/rapidaai/speechsquad/api/benchmark-api/internal/audio"
	"github.com/rapidaai/speechsquad/pkg/utils"
)

const outputWAVSampleRate = 22050

// OutputFilestreams owns the three result files plus the synthesized WAV
// directory. One mutex guards everything; records are small appends.
type OutputFilestreams struct {
	mu sync.Mutex

	rootDirectory string
	questionFile  *os.File
	answerFile    *os.File
	waveFile      *os.File

	wavIndex     uint64
	answersBegun bool
}

// NewOutputFilestreams opens the result files under root. The answers file
// is a single JSON object, opened with "{" here and closed by Close.
func NewOutputFilestreams(root, questionName, answerName, waveName string) (*OutputFilestreams, error) {
	o := &OutputFilestreams{rootDirectory: root}

	var err error
	if o.answerFile, err = os.Create(filepath.Join(root, answerName)); err != nil {
		return nil, fmt.Errorf("opening answer file: %w", err)
	}
	if _, err = o.answerFile.WriteString("{"); err != nil {
		return nil, err
	}
	if o.questionFile, err = os.Create(filepath.Join(root, questionName)); err != nil {
		o.answerFile.Close()
		return nil, fmt.Errorf("opening question file: %w", err)
	}
	if o.waveFile, err = os.Create(filepath.Join(root, waveName)); err != nil {
		o.answerFile.Close()
		o.questionFile.Close()
		return nil, fmt.Errorf("opening wave file: %w", err)
	}
	return o, nil
}

// WriteEmptyQuestion records a stream that produced no recognized question.
func (o *OutputFilestreams) WriteEmptyQuestion(audioPath string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintf(o.questionFile, "{\"audio_filepath\": \"%s\",\"question\": \"\"}\n", audioPath)
	return err
}

// WriteResult appends one completed stream's records: the recognized
// question, the answer map entry, the synthesized WAV, and the wave manifest
// line with its inter-response latencies. Returns the WAV path written.
func (o *OutputFilestreams) WriteResult(audioPath, questionID, question, answer string, audioContent []byte, latencies []float64) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	separator := ""
	if o.answersBegun {
		separator = ","
	}
	o.answersBegun = true
	if _, err := fmt.Fprintf(o.answerFile, "%s\"%s\": \"%s\"", separator, questionID, utils.EscapeQuotes(answer)); err != nil {
		return "", err
	}

	if _, err := fmt.Fprintf(o.questionFile, "{\"audio_filepath\": \"%s\",\"text\": \"%s\"}\n",
		audioPath, utils.EscapeQuotes(question)); err != nil {
		return "", err
	}

	wavPath := filepath.Join(o.rootDirectory, strconv.FormatUint(o.wavIndex, 10)+".wav")
	o.wavIndex++
	if err := internal_audio.WriteFloat32WAV(wavPath, outputWAVSampleRate, audioContent); err != nil {
		return "", err
	}

	var rendered []string
	for _, latency := range latencies {
		rendered = append(rendered, "\""+strconv.FormatFloat(latency, 'f', 6, 64)+"\"")
	}
	if _, err := fmt.Fprintf(o.waveFile, "{\"qid\":\"%s\",\"text\":\"%s\",\"synthesized_audio_path\":\"%s\",\"latencies\":[%s]}\n",
		questionID, utils.EscapeQuotes(answer), wavPath, strings.Join(rendered, ",")); err != nil {
		return "", err
	}
	return wavPath, nil
}

// Close finishes the answers object and closes every file.
func (o *OutputFilestreams) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var firstErr error
	if _, err := o.answerFile.WriteString("}"); err != nil && firstErr == nil {
		firstErr = err
	}
	for _, f := range []*os.File{o.waveFile, o.answerFile, o.questionFile} {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
