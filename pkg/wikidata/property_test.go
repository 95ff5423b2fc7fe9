package wikidata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
)

func TestDefaultProperties(t *testing.T) {
	props := DefaultProperties()
	require.Len(t, props, 9)

	for _, p := range props {
		assert.NoError(t, p.Validate(), "descriptor %s", p.Name)
	}

	// The partition into batch, per-property list, and dated queries.
	scalars := Scalars(props)
	assert.Equal(t, []string{"codeiso2", "area_km2", "flag_image", "osm_rel_id"}, names(scalars))
	assert.Equal(t, []string{"continent", "languages", "locator_map"}, names(Lists(props)))
	assert.Equal(t, []string{"population", "gdp_bd"}, names(DatedProps(props)))
}

func TestPropertyVariable(t *testing.T) {
	assert.Equal(t, "continentLabel", Property{Name: "continent", Label: true}.Variable())
	assert.Equal(t, "flag_image", Property{Name: "flag_image"}.Variable())
}

func TestPropertyValidate(t *testing.T) {
	tests := []struct {
		name string
		prop Property
	}{
		{"empty name", Property{PID: 297, Kind: KindScalar}},
		{"zero pid", Property{Name: "codeiso2", Kind: KindScalar}},
		{"bad kind", Property{Name: "codeiso2", PID: 297, Kind: "set"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.prop.Validate(), errors.ErrInvalidInput)
		})
	}
}

func TestLoadProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "properties.yaml")
	content := `- name: codeiso2
  pid: 297
- name: continent
  pid: 30
  kind: list
  label: true
- name: population
  pid: 1082
  dated: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	props, err := LoadProperties(path)
	require.NoError(t, err)
	require.Len(t, props, 3)

	// Kind defaults to scalar when omitted.
	assert.Equal(t, KindScalar, props[0].Kind)
	assert.Equal(t, KindList, props[1].Kind)
	assert.True(t, props[2].Dated)
}

func TestLoadPropertiesInvalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProperties(filepath.Join(dir, "absent.yaml"))
		var ioErr *errors.IOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("empty list", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))
		_, err := LoadProperties(path)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- name: area_km2\n  pid: 0\n"), 0o644))
		_, err := LoadProperties(path)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func names(props []Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Name
	}
	return out
}
