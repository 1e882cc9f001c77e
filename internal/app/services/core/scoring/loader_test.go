package scoring

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
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
  - {category: moderate, label: Moderate, min: 3, max: 6, message: Follow up recommended.}
  - {category: minimal, label: Minimal, min: 0, max: 2, message: No follow up needed.}
`

func TestLoadInstrument(t *testing.T) {
	instrument, err := LoadInstrument(strings.NewReader(phq2Document))
	require.NoError(t, err)

	assert.Equal(t, "phq2", instrument.Code)
	assert.Equal(t, 2, instrument.QuestionCount())
	assert.Equal(t, 6, instrument.MaxScore())
	assert.Equal(t, CategoryMinimal, instrument.Bands[0].Category, "bands are sorted by lower bound")

	result, err := instrument.Score(map[int]int{0: 2, 1: 1})
	require.NoError(t, err)
	assert.Equal(t, CategoryModerate, result.Category)
	assert.Equal(t, 3, result.Score)
}

func TestLoadInstrument_RoundTripsGAD7(t *testing.T) {
	document := `
code: gad7
title: GAD-7 Anxiety Assessment
prompt: Over the last 2 weeks, how often have you been bothered by the following problems?
questions:
  - text: Feeling nervous, anxious, or on edge
  - text: Not being able to stop or control worrying
  - text: Worrying too much about different things
  - text: Trouble relaxing
  - text: Being so restless that it is hard to sit still
  - text: Becoming easily annoyed or irritable
  - text: Feeling afraid, as if something awful might happen
options:
  - {value: 0, label: Not at all}
  - {value: 1, label: Several days}
  - {value: 2, label: More than half the days}
  - {value: 3, label: Nearly every day}
min_answer: 0
max_answer: 3
bands:
  - category: minimal
    label: Minimal
    min: 0
    max: 4
    message: Your anxiety level is minimal. Keep monitoring your emotions and practice self-care techniques regularly.
    style: result-mild
  - category: mild
    label: Mild
    min: 5
    max: 9
    message: You show symptoms of mild anxiety. We recommend adding relaxation and mindfulness techniques to your daily routine.
    style: result-mild
  - category: moderate
    label: Moderate
    min: 10
    max: 14
    message: You show symptoms of moderate anxiety. Consider consulting a mental health professional for additional guidance.
    style: result-moderate
  - category: severe
    label: Severe
    min: 15
    max: 21
    message: You show symptoms of severe anxiety. We recommend seeking professional help as soon as possible to receive the right support.
    style: result-severe
`
	instrument, err := LoadInstrument(strings.NewReader(document))
	require.NoError(t, err)

	if diff := cmp.Diff(GAD7(), instrument); diff != "" {
		t.Errorf("LoadInstrument() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInstrument_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"empty", ""},
		{"unknown key", "code: x\nquestionz: []\n"},
		{"gap between bands", strings.Replace(phq2Document, "min: 3, max: 6", "min: 4, max: 6", 1)},
		{"malformed yaml", "code: [unterminated"},
		{"unknown category", strings.Replace(phq2Document, "category: moderate", "category: banana", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInstrument(strings.NewReader(tt.document))
			assert.ErrorIs(t, err, ErrInvalidInstrument)
		})
	}
}

func TestLoadInstrumentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phq2.yaml"), []byte(phq2Document), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600))

	instruments, err := LoadInstrumentDir(dir)
	require.NoError(t, err)
	require.Len(t, instruments, 1)
	assert.Equal(t, "phq2", instruments[0].Code)
}

func TestCatalog(t *testing.T) {
	phq2, err := LoadInstrument(strings.NewReader(phq2Document))
	require.NoError(t, err)

	catalog, err := NewCatalog(GAD7(), phq2)
	require.NoError(t, err)
	assert.Equal(t, []string{"gad7", "phq2"}, catalog.Codes())

	found, err := catalog.Find("gad7")
	require.NoError(t, err)
	assert.Equal(t, 7, found.QuestionCount())

	_, err = catalog.Find("bdi")
	assert.ErrorIs(t, err, ErrUnknownInstrument)

	_, err = NewCatalog(GAD7(), GAD7())
	assert.ErrorIs(t, err, ErrInvalidInstrument)
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog("", "gad7")
	require.NoError(t, err)
	assert.Equal(t, []string{"gad7"}, catalog.Codes())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phq2.yaml"), []byte(phq2Document), 0o600))

	catalog, err = LoadCatalog(dir, "phq2")
	require.NoError(t, err)
	assert.Equal(t, []string{"gad7", "phq2"}, catalog.Codes())

	_, err = LoadCatalog(dir, "bdi")
	assert.ErrorIs(t, err, ErrUnknownInstrument)

	_, err = LoadCatalog(filepath.Join(dir, "missing"), "gad7")
	assert.Error(t, err)
}

func TestLoadCatalog_ShippedInstruments(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join("..", "..", "..", "..", "..", "configs", "instruments"), "phq9")
	require.NoError(t, err)

	phq9, err := catalog.Find("phq9")
	require.NoError(t, err)
	assert.Equal(t, 27, phq9.MaxScore())

	result, err := phq9.Score(map[int]int{0: 2, 1: 2, 2: 2, 3: 2, 4: 2, 5: 0, 6: 0, 7: 0, 8: 0})
	require.NoError(t, err)
	assert.Equal(t, Category("moderate"), result.Category)
}
