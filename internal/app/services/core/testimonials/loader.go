package testimonials

import (
	"fmt"
	"os"
	"sensus-service/internal/app/models"
	"strings"

	"gopkg.in/yaml.v3"
)

type testimonialFile struct {
	Testimonials []testimonialEntry `yaml:"testimonials"`
}

type testimonialEntry struct {
	ID     string `yaml:"id"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
	Quote  string `yaml:"quote"`
}

// LoadTestimonials reads the carousel contents from a YAML file. An empty
// path yields the built-in set.
func LoadTestimonials(path string) ([]models.Testimonial, error) {
	if path == "" {
		return DefaultTestimonials(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var parsed testimonialFile
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode testimonials %s: %w", path, err)
	}
	if len(parsed.Testimonials) == 0 {
		return nil, fmt.Errorf("testimonials %s: %w", path, ErrEmptyCarousel)
	}

	items := make([]models.Testimonial, 0, len(parsed.Testimonials))
	seen := make(map[string]bool, len(parsed.Testimonials))
	for i, entry := range parsed.Testimonials {
		if strings.TrimSpace(entry.Quote) == "" || strings.TrimSpace(entry.Author) == "" {
			return nil, fmt.Errorf("testimonials %s: entry %d needs an author and a quote", path, i)
		}
		id := entry.ID
		if id == "" {
			id = fmt.Sprintf("t%d", i+1)
		}
		if seen[id] {
			return nil, fmt.Errorf("testimonials %s: duplicate id %q", path, id)
		}
		seen[id] = true
		items = append(items, models.Testimonial{
			ID:     id,
			Author: entry.Author,
			Role:   entry.Role,
			Quote:  strings.TrimSpace(entry.Quote),
		})
	}
	return items, nil
}

func DefaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:     "t1",
			Author: "María G.",
			Role:   "University student",
			Quote:  "Taking the anxiety test helped me put a name to what I was feeling and encouraged me to ask for help.",
		},
		{
			ID:     "t2",
			Author: "Carlos R.",
			Role:   "Software developer",
			Quote:  "Writing in the emotional diary every night has become part of my routine. Seeing my streak grow keeps me going.",
		},
		{
			ID:     "t3",
			Author: "Lucía M.",
			Role:   "Nurse",
			Quote:  "The relaxation resources are simple and practical. I use the breathing exercises before every class.",
		},
	}
}
