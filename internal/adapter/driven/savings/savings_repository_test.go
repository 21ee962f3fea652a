package savings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/savings-post-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSavingsData_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savings-data.json")
	content := `{
  "entries": [
    {"amount": 100, "date": "2025-01-03", "note": "salary"},
    {"amount": 250.5, "category": "ignored"}
  ],
  "currentGoal": {"name": "Emergency Fund", "target": 1000}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	data, err := NewSavingsRepository().LoadSavingsData(path)

	require.NoError(t, err)
	require.Len(t, data.Entries, 2)
	assert.Equal(t, 100.0, data.Entries[0].Amount)
	assert.Equal(t, "2025-01-03", data.Entries[0].Date)
	assert.Equal(t, "salary", data.Entries[0].Note)
	assert.Equal(t, 250.5, data.Entries[1].Amount)
	assert.Equal(t, "Emergency Fund", data.CurrentGoal.Name)
	assert.Equal(t, 1000.0, data.CurrentGoal.Target)
}

func TestLoadSavingsData_Missing(t *testing.T) {
	_, err := NewSavingsRepository().LoadSavingsData(filepath.Join(t.TempDir(), "savings-data.json"))

	assert.ErrorIs(t, err, types.ErrInputNotFound)
}

func TestLoadSavingsData_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savings-data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries": [`), 0o644))

	_, err := NewSavingsRepository().LoadSavingsData(path)

	require.Error(t, err)
	assert.NotErrorIs(t, err, types.ErrInputNotFound)
	assert.Contains(t, err.Error(), "error parsing savings data")
}

func TestLoadSavingsData_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty object", content: `{}`},
		{name: "null document", content: `null`},
		{name: "null entries", content: `{"entries": null, "currentGoal": {"name": "Car", "target": 5000}}`},
		{name: "missing entries", content: `{"currentGoal": {"name": "Car", "target": 5000}}`},
		{name: "missing goal", content: `{"entries": [{"amount": 10}]}`},
		{name: "null goal", content: `{"entries": [], "currentGoal": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "savings-data.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			data, err := NewSavingsRepository().LoadSavingsData(path)

			assert.Nil(t, data)
			assert.ErrorIs(t, err, types.ErrInvalidSavingsData)
			assert.Contains(t, err.Error(), "error parsing savings data")
		})
	}
}

func TestLoadSavingsData_EmptyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savings-data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries": [], "currentGoal": {"name": "Car", "target": 5000}}`), 0o644))

	data, err := NewSavingsRepository().LoadSavingsData(path)

	require.NoError(t, err)
	assert.Empty(t, data.Entries)
	assert.Equal(t, 5000.0, data.CurrentGoal.Target)
}
