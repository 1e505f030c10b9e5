package staticlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_PreservesFileOrder(t *testing.T) {
	path := writeList(t, `[
		{"name": "Ramesh Kumar"},
		{"name": "Anita Sharma", "phone": "9876543210"},
		{"name": "Ahmed Khan"}
	]`)

	customers, err := Load(path)
	require.NoError(t, err)
	require.Len(t, customers, 3)

	assert.Equal(t, "Ramesh Kumar", customers[0].Name)
	assert.Equal(t, "Anita Sharma", customers[1].Name)
	assert.Equal(t, "Ahmed Khan", customers[2].Name)
	assert.Equal(t, 1, customers[0].Position)
	assert.Equal(t, 3, customers[2].Position)
	require.NotNil(t, customers[1].Phone)
	assert.Equal(t, "9876543210", *customers[1].Phone)
}

func TestLoad_SkipsEmptyNames(t *testing.T) {
	path := writeList(t, `[{"name": ""}, {"name": "Priya Patel"}]`)

	customers, err := Load(path)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Priya Patel", customers[0].Name)
	assert.Equal(t, 1, customers[0].Position)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeList(t, `{"name": "not a list"`)
	_, err := Load(path)
	assert.Error(t, err)
}
