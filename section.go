package carnet

import "context"

// OtherCategory is the label applied when no category range matches a
// sort key, and to degraded entries whose document could not be loaded.
const OtherCategory = "Autres"

// Section is a top-level collection of documents (one curriculum) with its
// own identifier list and category range table.
type Section struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`

	// Path is the on-fetch prefix used to qualify bare identifiers.
	Path string `json:"path" yaml:"path"`

	// Files is the static identifier list. Ignored when IndexFile is set.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`

	// IndexFile names a side-channel JSON array resource listing the
	// section's documents (generated by an offline tooling step).
	IndexFile string `json:"indexFile,omitempty" yaml:"indexFile,omitempty"`

	// Categories maps folded sort-key values to labels. Ranges are data,
	// not logic; boundaries differ per section.
	Categories []CategoryRange `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// CategoryRange labels the half-open interval [Min, Max) of folded
// sort-key values. Max <= 0 means unbounded above.
type CategoryRange struct {
	Min   int    `json:"min" yaml:"min"`
	Max   int    `json:"max" yaml:"max"`
	Label string `json:"label" yaml:"label"`
}

// CategoryFor maps a sort key into the section's range table.
// Returns OtherCategory when no range matches or the section is nil.
func (s *Section) CategoryFor(sortKey string) string {
	if s == nil {
		return OtherCategory
	}
	n := SortKeyToNumber(sortKey)
	for _, r := range s.Categories {
		if n < r.Min {
			continue
		}
		if r.Max > 0 && n >= r.Max {
			continue
		}
		return r.Label
	}
	return OtherCategory
}

// Qualify resolves an identifier against the section prefix. Compound
// paths ("Section/file.md") pass through unchanged.
func (s *Section) Qualify(identifier string) string {
	for _, r := range identifier {
		if r == '/' {
			return identifier
		}
	}
	if s == nil || s.Path == "" {
		return identifier
	}
	return s.Path + "/" + identifier
}

// SectionService serves the section registry.
type SectionService interface {
	// Sections returns all registered sections in configuration order.
	Sections(ctx context.Context) ([]*Section, error)

	// FindSectionByID retrieves a section by ID.
	// Returns ENOTFOUND if the section does not exist.
	FindSectionByID(ctx context.Context, id string) (*Section, error)
}
