package calendar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCalendar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndFindByDate(t *testing.T) {
	path := writeCalendar(t, `{
		"Toshkent": [
			{"date": "2025-03-01", "saharlik": "05:09", "iftorlik": "18:21"},
			{"date": "2025-03-02", "saharlik": "05:08", "iftorlik": "18:22"}
		],
		"Andijon": [
			{"date": "2025-03-01", "saharlik": "05:01", "iftorlik": "18:13"}
		]
	}`)

	cal, err := Load(path)
	require.NoError(t, err)

	e, found := cal.FindByDate("Toshkent", "2025-03-02")
	require.True(t, found)
	assert.Equal(t, "05:08", e.Saharlik)
	assert.Equal(t, "18:22", e.Iftorlik)

	_, found = cal.FindByDate("Toshkent", "2025-03-03")
	assert.False(t, found)

	// No fallback region, no fuzzy matching.
	_, found = cal.FindByDate("Samarqand", "2025-03-01")
	assert.False(t, found)
	_, found = cal.FindByDate("toshkent", "2025-03-01")
	assert.False(t, found)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedDocument(t *testing.T) {
	path := writeCalendar(t, `{"Toshkent": [`)
	_, err := Load(path)
	assert.Error(t, err)
}
