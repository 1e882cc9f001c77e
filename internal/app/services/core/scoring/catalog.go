package scoring

import (
	"fmt"
	"sort"
)

// Catalog is a read-only set of instruments keyed by code. It is populated
// once at startup and then only read.
type Catalog struct {
	instruments map[string]*Instrument
}

// NewCatalog validates every instrument and rejects duplicate codes.
func NewCatalog(instruments ...*Instrument) (*Catalog, error) {
	catalog := &Catalog{instruments: make(map[string]*Instrument, len(instruments))}
	for _, instrument := range instruments {
		if err := instrument.Validate(); err != nil {
			return nil, err
		}
		if _, exists := catalog.instruments[instrument.Code]; exists {
			return nil, invalidInstrument(instrument.Code, "code registered twice")
		}
		catalog.instruments[instrument.Code] = instrument
	}
	return catalog, nil
}

func (c *Catalog) Find(code string) (*Instrument, error) {
	instrument, ok := c.instruments[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, code)
	}
	return instrument, nil
}

func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.instruments))
	for code := range c.instruments {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LoadCatalog builds the catalog from the instrument files in dir, adding
// the built in GAD-7 unless a file already defines it. An empty dir yields
// only the built in instrument. defaultCode must resolve in the result.
func LoadCatalog(dir, defaultCode string) (*Catalog, error) {
	var instruments []*Instrument
	if dir != "" {
		loaded, err := LoadInstrumentDir(dir)
		if err != nil {
			return nil, fmt.Errorf("load instruments from %s: %w", dir, err)
		}
		instruments = loaded
	}

	builtin := GAD7()
	defined := false
	for _, instrument := range instruments {
		if instrument.Code == builtin.Code {
			defined = true
			break
		}
	}
	if !defined {
		instruments = append(instruments, builtin)
	}

	catalog, err := NewCatalog(instruments...)
	if err != nil {
		return nil, err
	}
	if defaultCode != "" {
		if _, err := catalog.Find(defaultCode); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}
