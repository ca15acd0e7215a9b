// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_task

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFilestreams(t *testing.T) {
	root := t.TempDir()
	output, err := NewOutputFilestreams(root, "questions.json", "answers.json", "waves.json")
	require.NoError(t, err)

	wav1, err := output.WriteResult("/data/q1.wav", "q1", `what is "x"`, `the "answer"`,
		make([]byte, 8), []float64{1.5, 2.25})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "0.wav"), wav1)

	wav2, err := output.WriteResult("/data/q2.wav", "q2", "plain", "simple", make([]byte, 4), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "1.wav"), wav2)

	require.NoError(t, output.WriteEmptyQuestion("/data/q3.wav"))
	require.NoError(t, output.Close())

	// Answers must be one valid JSON object with escaped quotes.
	answersRaw, err := os.ReadFile(filepath.Join(root, "answers.json"))
	require.NoError(t, err)
	var answers map[string]string
	require.NoError(t, json.Unmarshal(answersRaw, &answers))
	assert.Equal(t, `the "answer"`, answers["q1"])
	assert.Equal(t, "simple", answers["q2"])

	// Questions are newline-delimited JSON objects.
	questionsRaw, err := os.ReadFile(filepath.Join(root, "questions.json"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(questionsRaw)), "\n")
	require.Len(t, lines, 3)
	var question struct {
		AudioFilepath string `json:"audio_filepath"`
		Text          string `json:"text"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &question))
	assert.Equal(t, "/data/q1.wav", question.AudioFilepath)
	assert.Equal(t, `what is "x"`, question.Text)
	assert.Contains(t, lines[2], `"question": ""`)

	// Wave manifest lines carry the latency vector and the wav path.
	wavesRaw, err := os.ReadFile(filepath.Join(root, "waves.json"))
	require.NoError(t, err)
	waveLines := strings.Split(strings.TrimSpace(string(wavesRaw)), "\n")
	require.Len(t, waveLines, 2)
	var wave struct {
		QID                  string   `json:"qid"`
		Text                 string   `json:"text"`
		SynthesizedAudioPath string   `json:"synthesized_audio_path"`
		Latencies            []string `json:"latencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(waveLines[0]), &wave))
	assert.Equal(t, "q1", wave.QID)
	assert.Equal(t, wav1, wave.SynthesizedAudioPath)
	require.Len(t, wave.Latencies, 2)
	assert.True(t, strings.HasPrefix(wave.Latencies[0], "1.5"))

	// Both synthesized wav files exist.
	for _, path := range []string{wav1, wav2} {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}

func TestOutputFilestreamsEmptyRun(t *testing.T) {
	root := t.TempDir()
	output, err := NewOutputFilestreams(root, "q.json", "a.json", "w.json")
	require.NoError(t, err)
	require.NoError(t, output.Close())

	answersRaw, err := os.ReadFile(filepath.Join(root, "a.json"))
	require.NoError(t, err)
	var answers map[string]string
	require.NoError(t, json.Unmarshal(answersRaw, &answers))
	assert.Empty(t, answers)
}
