package instance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/instance"
)

const classicYAML = `
capacity: 50
items:
  - {id: "1", value: 60, weight: 10}
  - {id: "2", value: 100, weight: 20}
  - {id: "3", value: 120, weight: 30}
`

func TestDecode_YAML(t *testing.T) {
	p, err := instance.Decode([]byte(classicYAML), instance.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 50.0, p.Capacity())
	assert.Equal(t, core.Item{ID: "2", Value: 100, Weight: 20}, p.Item(1))
}

func TestDecode_JSON(t *testing.T) {
	p, err := instance.Decode([]byte(`{"capacity": 7.5, "items": [{"id": "a", "value": 3, "weight": 2.5}]}`), instance.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 7.5, p.Capacity())
	assert.False(t, p.IsIntegral())
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		format instance.Format
	}{
		{"missing capacity", "items: []\n", instance.FormatYAML},
		{"unknown yaml key", "capacity: 5\nitem: []\n", instance.FormatYAML},
		{"unknown json key", `{"capacity": 5, "weights": []}`, instance.FormatJSON},
		{"broken json", `{"capacity": `, instance.FormatJSON},
		{"unknown format", "capacity: 5", instance.Format("toml")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Decode([]byte(tc.data), tc.format)
			assert.ErrorIs(t, err, instance.ErrInvalidInstance)
		})
	}
}

func TestDecode_ValidationWrapsCore(t *testing.T) {
	data := "capacity: 5\nitems:\n  - {id: a, value: 1, weight: 1}\n  - {id: a, value: 2, weight: 2}\n"
	_, err := instance.Decode([]byte(data), instance.FormatYAML)
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = instance.Decode([]byte("capacity: -1\n"), instance.FormatYAML)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestEncode_RoundTrip(t *testing.T) {
	p, err := instance.Decode([]byte(classicYAML), instance.FormatYAML)
	require.NoError(t, err)
	for _, f := range []instance.Format{instance.FormatYAML, instance.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, instance.Encode(&buf, p, f))
		back, err := instance.Decode(buf.Bytes(), f)
		require.NoError(t, err, string(f))
		assert.Equal(t, p.Items(), back.Items(), string(f))
		assert.Equal(t, p.Capacity(), back.Capacity(), string(f))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "classic.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(classicYAML), 0o600))
	p, err := instance.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())

	jsonPath := filepath.Join(dir, "one.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"capacity": 1, "items": []}`), 0o600))
	p, err = instance.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())

	_, err = instance.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, instance.FormatJSON, instance.FormatFromPath("a/b.json"))
	assert.Equal(t, instance.FormatYAML, instance.FormatFromPath("a/b.yaml"))
	assert.Equal(t, instance.FormatYAML, instance.FormatFromPath("noext"))
}
