// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_dataset loads the SQuAD evaluation inputs: the question
// manifest pairing audio clips with question ids, and the dataset file
// holding question text and context paragraphs.
package internal_dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// QuestionRef points one spoken question at its audio file.
type QuestionRef struct {
	QuestionID string
	AudioPath  string
}

type manifestLine struct {
	AudioFilepath string `json:"audio_filepath"`
	ID            string `json:"id"`
}

// ParseQuestionsJSON reads the newline-delimited question manifest. Blank
// lines are skipped; a malformed or incomplete line fails the whole load.
func ParseQuestionsJSON(path string) ([]QuestionRef, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open questions manifest: %w", err)
	}
	defer file.Close()

	var questions []QuestionRef
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry manifestLine
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("problem parsing manifest line %q: %w", string(line), err)
		}
		if entry.ID == "" {
			return nil, fmt.Errorf("manifest line %q does not contain an id", string(line))
		}
		if entry.AudioFilepath == "" {
			return nil, fmt.Errorf("manifest line %q does not contain an audio_filepath", string(line))
		}
		questions = append(questions, QuestionRef{QuestionID: entry.ID, AudioPath: entry.AudioFilepath})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading questions manifest: %w", err)
	}
	return questions, nil
}

// QuestionCatalog maps question ids to question text and to a context
// paragraph. Contexts are shared: every question of a paragraph references
// the same string. Read-only after load.
type QuestionCatalog struct {
	questions map[string]string
	contexts  map[string]*string
	// distinct paragraphs, kept for introspection
	paragraphCount int
}

type squadFile struct {
	Data []struct {
		Paragraphs []struct {
			Context string `json:"context"`
			QAS     []struct {
				Question string `json:"question"`
				ID       string `json:"id"`
			} `json:"qas"`
		} `json:"paragraphs"`
	} `json:"data"`
}

// LoadCatalog parses a SQuAD v2 dataset file.
func LoadCatalog(path string) (*QuestionCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	var parsed squadFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("cannot parse squad json file %s: %w", path, err)
	}

	catalog := &QuestionCatalog{
		questions: make(map[string]string),
		contexts:  make(map[string]*string),
	}
	for _, data := range parsed.Data {
		for _, paragraph := range data.Paragraphs {
			context := paragraph.Context
			catalog.paragraphCount++
			for _, qa := range paragraph.QAS {
				catalog.questions[qa.ID] = qa.Question
				catalog.contexts[qa.ID] = &context
			}
		}
	}
	return catalog, nil
}

// Question returns the reference question text for id.
func (c *QuestionCatalog) Question(id string) (string, error) {
	question, ok := c.questions[id]
	if !ok {
		return "", fmt.Errorf("question id %s not found", id)
	}
	return question, nil
}

// Context returns the context paragraph the question is answered from.
func (c *QuestionCatalog) Context(id string) (string, error) {
	context, ok := c.contexts[id]
	if !ok {
		return "", fmt.Errorf("question id %s not found", id)
	}
	return *context, nil
}

// Len reports the number of questions.
func (c *QuestionCatalog) Len() int {
	return len(c.questions)
}

// ParagraphCount reports the number of distinct context paragraphs.
func (c *QuestionCatalog) ParagraphCount() int {
	return c.paragraphCount
}
