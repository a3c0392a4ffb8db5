package jsonstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/model"
)

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	matches, err := Load()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSaveThenLoad(t *testing.T) {
	t.Chdir(t.TempDir())

	m := model.New([2]string{"Ann", "Ben"}, [2]string{"Cara", "Dev"}, "2026-08-30", "doubles")
	require.NoError(t, m.Start())
	require.NoError(t, Save([]model.Match{m}))

	got, err := Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, m, got[0])
}

func TestLoadCorruptFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(dataFileName, []byte("not json"), 0o644))
	_, err := Load()
	assert.Error(t, err)
}
