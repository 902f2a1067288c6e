package seeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Default(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)
	require.NotEmpty(t, catalog.Categories)

	names := map[string]bool{}
	for _, c := range catalog.Categories {
		for _, tech := range c.Technologies {
			names[tech.Name] = true
		}
	}
	assert.True(t, names["PostgreSQL"])
	assert.True(t, names["Django"])
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - name: Queues
    color: "#123456"
    technologies:
      - name: RabbitMQ
        version: "3.13"
`), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Categories, 1)
	assert.Equal(t, "Queues", catalog.Categories[0].Name)
	assert.Equal(t, "#123456", catalog.Categories[0].Color)
	assert.Equal(t, "3.13", catalog.Categories[0].Technologies[0].Version)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "categories: [unterminated"},
		{name: "category without name", data: "categories:\n  - color: \"#000000\"\n"},
		{name: "technology without name", data: "categories:\n  - name: A\n    technologies:\n      - version: \"1\"\n"},
		{name: "duplicate technology", data: "categories:\n  - name: A\n    technologies:\n      - name: Go\n  - name: B\n    technologies:\n      - name: Go\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
