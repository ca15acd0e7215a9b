// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSquad = `{
  "data": [
    {
      "paragraphs": [
        {
          "context": "The sky is blue because of Rayleigh scattering.",
          "qas": [
            {"question": "Why is the sky blue", "id": "q1"},
            {"question": "What scatters sunlight", "id": "q2"}
          ]
        },
        {
          "context": "Go was designed at Google in 2007.",
          "qas": [
            {"question": "Where was Go designed", "id": "q3"}
          ]
        }
      ]
    }
  ]
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(writeTempFile(t, "dev.json", sampleSquad))
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.Len())
	assert.Equal(t, 2, catalog.ParagraphCount())

	question, err := catalog.Question("q1")
	require.NoError(t, err)
	assert.Equal(t, "Why is the sky blue", question)

	// Questions of the same paragraph share one context.
	context1, err := catalog.Context("q1")
	require.NoError(t, err)
	context2, err := catalog.Context("q2")
	require.NoError(t, err)
	assert.Equal(t, context1, context2)
	assert.Equal(t, "The sky is blue because of Rayleigh scattering.", context1)

	context3, err := catalog.Context("q3")
	require.NoError(t, err)
	assert.Equal(t, "Go was designed at Google in 2007.", context3)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestCatalogUnknownQuestion(t *testing.T) {
	catalog, err := LoadCatalog(writeTempFile(t, "dev.json", sampleSquad))
	require.NoError(t, err)

	_, err = catalog.Question("missing")
	assert.ErrorContains(t, err, "missing")
	_, err = catalog.Context("missing")
	assert.Error(t, err)
}

func TestParseQuestionsJSON(t *testing.T) {
	manifest := `{"audio_filepath": "/data/q1.wav", "id": "q1"}

{"audio_filepath": "/data/q2.wav", "id": "q2"}
`
	refs, err := ParseQuestionsJSON(writeTempFile(t, "questions.json", manifest))
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, QuestionRef{QuestionID: "q1", AudioPath: "/data/q1.wav"}, refs[0])
	assert.Equal(t, QuestionRef{QuestionID: "q2", AudioPath: "/data/q2.wav"}, refs[1])
}

func TestParseQuestionsJSONRejectsIncompleteLines(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"missing id", `{"audio_filepath": "/data/q1.wav"}`},
		{"missing path", `{"id": "q1"}`},
		{"not json", `audio q1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestionsJSON(writeTempFile(t, "questions.json", tt.manifest))
			assert.Error(t, err)
		})
	}
}
