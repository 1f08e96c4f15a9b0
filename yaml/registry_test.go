package yaml_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aduverger/carnet"
	"github.com/aduverger/carnet/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_EmbeddedDefaults(t *testing.T) {
	t.Parallel()

	registry, err := yaml.NewRegistry()
	require.NoError(t, err)

	sections, err := registry.Sections(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, sections)

	python, err := registry.FindSectionByID(context.Background(), "python")
	require.NoError(t, err)
	assert.Equal(t, "Python", python.Path)
	assert.Equal(t, "files-index.json", python.IndexFile)
	require.NotEmpty(t, python.Categories)
	assert.Equal(t, "Bases Python", python.Categories[0].Label)
}

func TestRegistry_FindSectionByID_Unknown(t *testing.T) {
	t.Parallel()

	registry, err := yaml.NewRegistry()
	require.NoError(t, err)

	_, err = registry.FindSectionByID(context.Background(), "inconnue")
	require.Error(t, err)
	assert.Equal(t, carnet.ENOTFOUND, carnet.ErrorCode(err))
}

func TestNewRegistryFromFile(t *testing.T) {
	t.Parallel()

	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "sections.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("loads custom config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
sections:
  - id: notes
    name: Notes
    path: Notes
    files: [1-intro.md]
    categories:
      - min: 1000000
        max: 0
        label: Notes
`)

		registry, err := yaml.NewRegistryFromFile(path)
		require.NoError(t, err)

		section, err := registry.FindSectionByID(context.Background(), "notes")
		require.NoError(t, err)
		assert.Equal(t, "Notes", section.Name)
		assert.Equal(t, []string{"1-intro.md"}, section.Files)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.NewRegistryFromFile("/nonexistent/sections.yaml")
		require.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.NewRegistryFromFile(writeConfig(t, "sections: {pas une liste"))
		require.Error(t, err)
	})

	t.Run("duplicate section id is EINVALID", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
sections:
  - id: notes
    name: Notes
  - id: notes
    name: Doublon
`)

		_, err := yaml.NewRegistryFromFile(path)
		require.Error(t, err)
		assert.Equal(t, carnet.EINVALID, carnet.ErrorCode(err))
	})

	t.Run("section without id is EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.NewRegistryFromFile(writeConfig(t, "sections:\n  - name: Anonyme\n"))
		require.Error(t, err)
		assert.Equal(t, carnet.EINVALID, carnet.ErrorCode(err))
	})
}
