package carnet_test

import (
	"testing"

	"github.com/aduverger/carnet"
	"github.com/stretchr/testify/assert"
)

func TestSection_CategoryFor(t *testing.T) {
	t.Parallel()

	section := &carnet.Section{
		ID: "python",
		Categories: []carnet.CategoryRange{
			{Min: 1000000, Max: 20000000, Label: "Bases Python"},
			{Min: 20000000, Max: 30000000, Label: "Intelligence Artificielle"},
			{Min: 50000000, Max: 0, Label: "Projets Pratiques"},
		},
	}

	tests := []struct {
		name    string
		sortKey string
		want    string
	}{
		{"first range", "5", "Bases Python"},
		{"child key stays in parent range", "5-03", "Bases Python"},
		{"boundary is exclusive above", "20", "Intelligence Artificielle"},
		{"unbounded range", "77", "Projets Pratiques"},
		{"default key falls in unbounded range", "999", "Projets Pratiques"},
		{"gap between ranges", "42", carnet.OtherCategory},
		{"below all ranges", "0", carnet.OtherCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, section.CategoryFor(tt.sortKey))
		})
	}
}

func TestSection_CategoryFor_NoRanges(t *testing.T) {
	t.Parallel()

	section := &carnet.Section{ID: "veille_technos"}

	assert.Equal(t, carnet.OtherCategory, section.CategoryFor("21"))
}

func TestSection_CategoryFor_NilSection(t *testing.T) {
	t.Parallel()

	var section *carnet.Section

	assert.Equal(t, carnet.OtherCategory, section.CategoryFor("21"))
}

func TestSection_Qualify(t *testing.T) {
	t.Parallel()

	section := &carnet.Section{ID: "python", Path: "Python"}

	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{"bare identifier", "21-intro.md", "Python/21-intro.md"},
		{"compound path passes through", "Angular/01-intro.md", "Angular/01-intro.md"},
		{"index file", "files-index.json", "Python/files-index.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, section.Qualify(tt.identifier))
		})
	}
}

func TestEntry_Summary(t *testing.T) {
	t.Parallel()

	entry := &carnet.Entry{
		Slug:     "21-intro",
		Title:    "Introduction à Python",
		Category: "Bases Python",
		Children: []*carnet.Entry{{Slug: "21-01-variables"}},
	}

	summary := entry.Summary()

	assert.Equal(t, "21-intro", summary.Slug)
	assert.Equal(t, "Introduction à Python", summary.Title)
	assert.Nil(t, summary.Children)
	assert.NotNil(t, entry.Children, "the original keeps its subtree")
}
