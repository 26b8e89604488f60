package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fastshop/internal/domain"
)

// File is the on-disk storefront definition: the templates plus the shipping
// cost table, so tiers are data rather than code.
type File struct {
	Templates []templateEntry  `yaml:"templates"`
	Shipping  map[string]int64 `yaml:"shipping"`
}

type templateEntry struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	UnitPriceCents int64    `yaml:"unitPriceCents"`
	Image          string   `yaml:"image"`
	Sizes          []string `yaml:"sizes"`
	Colors         []string `yaml:"colors"`
}

// DuplicateTemplateError reports a template ID appearing more than once.
type DuplicateTemplateError struct {
	ID string
}

func (e *DuplicateTemplateError) Error() string {
	return fmt.Sprintf("duplicate template id %q", e.ID)
}

// Load parses a storefront YAML document. The returned shipping map may be
// empty, in which case the caller falls back to the default table.
func Load(r io.Reader) (*Catalog, map[string]int64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Templates) == 0 {
		return nil, nil, fmt.Errorf("catalog has no templates")
	}

	templates := make([]domain.ProductTemplate, 0, len(f.Templates))
	for _, e := range f.Templates {
		tpl := domain.ProductTemplate{
			ID:             e.ID,
			Title:          e.Title,
			UnitPriceCents: e.UnitPriceCents,
			Image:          e.Image,
			Sizes:          e.Sizes,
			Colors:         e.Colors,
		}
		if len(tpl.Sizes) == 0 {
			tpl.Sizes = defaultSizes
		}
		if len(tpl.Colors) == 0 {
			tpl.Colors = defaultColors
		}
		templates = append(templates, tpl)
	}

	c, err := New(templates)
	if err != nil {
		return nil, nil, err
	}
	return c, f.Shipping, nil
}

// LoadFile opens and parses a storefront YAML file.
func LoadFile(path string) (*Catalog, map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func validateTemplate(tpl domain.ProductTemplate) error {
	if tpl.ID == "" || tpl.Title == "" {
		return fmt.Errorf("invalid template (missing id or title) for id %q", tpl.ID)
	}
	if tpl.UnitPriceCents <= 0 {
		return fmt.Errorf("template %q: unit price must be positive, got %d", tpl.ID, tpl.UnitPriceCents)
	}
	return nil
}
