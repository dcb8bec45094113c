package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveIfConfirmed_DeclineLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultOutputFile)
	require.NoError(t, os.WriteFile(path, []byte("old plan"), 0644))

	saved, err := SaveIfConfirmed("N", path, "new plan")
	require.NoError(t, err)
	assert.False(t, saved)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old plan", string(content))
}

func TestSaveIfConfirmed_DeclineDoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultOutputFile)

	saved, err := SaveIfConfirmed("N", path, "plan")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.NoFileExists(t, path)
}

func TestSaveIfConfirmed_OverwritesOnAnyOtherAnswer(t *testing.T) {
	for _, answer := range []string{"Y", "y", "n", "", "no", " N"} {
		t.Run(answer, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultOutputFile)
			require.NoError(t, os.WriteFile(path, []byte("a much longer previous plan"), 0644))

			saved, err := SaveIfConfirmed(answer, path, "week 1: stretch")
			require.NoError(t, err)
			assert.True(t, saved)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "week 1: stretch", string(content))
		})
	}
}

func TestSaveIfConfirmed_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultOutputFile)

	saved, err := SaveIfConfirmed("Y", path, "plan")
	assert.Error(t, err)
	assert.False(t, saved)
}
