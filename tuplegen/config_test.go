package tuplegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, "tuple", cfg.Package)
	assert.Equal(t, 20, cfg.MaxDegree)
	require.Len(t, cfg.Families, 20)

	assert.Equal(t, "Single", cfg.Families[0].Name)
	assert.Equal(t, "First", cfg.Families[0].Getter())
	assert.Equal(t, "Triple", cfg.Families[2].Name)
	assert.Equal(t, "Third", cfg.Families[2].Getter())
	assert.Equal(t, "Vigintuple", cfg.Families[19].Name)
	assert.Equal(t, "Twentieth", cfg.Families[19].Getter())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "families.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
package: small
maxDegree: 2
families:
  - {name: Single, ordinal: first}
  - {name: Pair, ordinal: second}
  - {name: Triple, ordinal: third}
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "small", cfg.Package)
	assert.Equal(t, 2, cfg.MaxDegree)
	assert.Len(t, cfg.families(), 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   string
		problems []string
	}{
		{
			name:     "not yaml",
			config:   "package: [",
			problems: []string{"invalid generator config"},
		},
		{
			name:     "zero max degree",
			config:   "package: tuple\nmaxDegree: 0\n",
			problems: []string{"max degree must be at least 1"},
		},
		{
			name: "too few families",
			config: `package: tuple
maxDegree: 3
families:
  - {name: Single, ordinal: first}
`,
			problems: []string{"1 families configured for max degree 3"},
		},
		{
			name: "bad names",
			config: `package: "not a package"
maxDegree: 3
families:
  - {name: Single, ordinal: first}
  - {name: "", ordinal: second}
  - {name: Single, ordinal: "3rd"}
`,
			problems: []string{
				`package name "not a package"`,
				"degree 2 has an empty family name",
				`family name "Single" used by degrees 1 and 3`,
				"of degree 3 is not an exported identifier",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseConfig([]byte(tt.config))
			require.ErrorIs(t, err, ErrInvalidConfig)

			for _, problem := range tt.problems {
				assert.ErrorContains(t, err, problem)
			}
		})
	}
}
