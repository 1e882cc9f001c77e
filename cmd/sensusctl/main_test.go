package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phq2Document = `
code: phq2
title: PHQ-2 Depression Screener
questions:
  - text: Little interest or pleasure in doing things
  - text: Feeling down, depressed, or hopeless
options:
  - {value: 0, label: Not at all}
  - {value: 1, label: Several days}
  - {value: 2, label: More than half the days}
  - {value: 3, label: Nearly every day}
min_answer: 0
max_answer: 3
bands:
  - {category: minimal, label: Minimal, min: 0, max: 2, message: No follow up needed.}
  - {category: moderate, label: Moderate, min: 3, max: 6, message: Follow up recommended.}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScore_Text(t *testing.T) {
	out, err := execute(t, "score", "--answers", "3,3,3,2,2,2,0")
	require.NoError(t, err)

	assert.Contains(t, out, "GAD-7 Anxiety Assessment: 15 / 21")
	assert.Contains(t, out, "Severe (severe)")
}

func TestScore_JSON(t *testing.T) {
	out, err := execute(t, "score", "-a", "0,0,0,0,0,0,0", "-o", "json")
	require.NoError(t, err)

	var result struct {
		Score    int    `json:"score"`
		MaxScore int    `json:"max_score"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 21, result.MaxScore)
	assert.Equal(t, "minimal", result.Category)
}

func TestScore_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"blank positions are unanswered", []string{"score", "-a", "1,,1,1,,1,1"}, "please answer every question, missing: 2, 5"},
		{"value outside the options", []string{"score", "-a", "1,1,1,1,1,1,4"}, "question 7 has an invalid answer"},
		{"not a number", []string{"score", "-a", "1,x"}, `answer 2 is not a number: "x"`},
		{"unknown instrument", []string{"score", "-i", "bdi", "-a", "1"}, "bdi"},
		{"unknown output", []string{"score", "-a", "1", "-o", "xml"}, `unknown output "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestScore_RequiresAnswers(t *testing.T) {
	_, err := execute(t, "score")
	assert.Error(t, err)
}

func TestInstrumentList_IncludesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phq2.yaml"), []byte(phq2Document), 0o600))

	out, err := execute(t, "instrument", "list", "--instruments-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "gad7")
	assert.Contains(t, out, "PHQ-2 Depression Screener")
}

func TestInstrumentShow(t *testing.T) {
	out, err := execute(t, "instrument", "show", "gad7")
	require.NoError(t, err)
	assert.Contains(t, out, " 7. Feeling afraid, as if something awful might happen")
	assert.Contains(t, out, "Nearly every day")

	_, err = execute(t, "instrument", "show")
	assert.Error(t, err)
}

func TestParseAnswers(t *testing.T) {
	responses, err := parseAnswers(" 1, 2 ,,3")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 1, 1: 2, 3: 3}, responses)
}

func TestScore_DefaultInstrumentFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phq2.yaml"), []byte(phq2Document), 0o600))
	t.Setenv(defaultInstrumentEnv, "phq2")

	out, err := execute(t, "score", "--instruments-dir", dir, "-a", "2,2")
	require.NoError(t, err)
	assert.Contains(t, out, "PHQ-2 Depression Screener: 4 / 6")
}
