package scoring

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadInstrument decodes a single YAML document into a validated Instrument.
// Unknown keys are rejected so that a typo in a band never silently drops it.
func LoadInstrument(r io.Reader) (*Instrument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var instrument Instrument
	if err := decoder.Decode(&instrument); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidInstrument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstrument, err)
	}

	instrument.Bands = instrument.sortedBands()
	if err := instrument.Validate(); err != nil {
		return nil, err
	}
	return &instrument, nil
}

func LoadInstrumentFile(path string) (*Instrument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	instrument, err := LoadInstrument(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return instrument, nil
}

// LoadInstrumentDir loads every *.yaml and *.yml file in dir, ordered by file
// name.
func LoadInstrumentDir(dir string) ([]*Instrument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	instruments := make([]*Instrument, 0, len(names))
	for _, name := range names {
		instrument, err := LoadInstrumentFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		instruments = append(instruments, instrument)
	}
	return instruments, nil
}
