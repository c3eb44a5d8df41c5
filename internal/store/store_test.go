package store

import (
	"os"
	"path/filepath"
	"testing"

	"quiznight_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func TestLoad_MissingFileWritesSeed(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	seed := map[string]int{"jas": 5}
	out := make(map[string]int)
	require.NoError(t, s.Load("scores", &out, Static(seed)))

	assert.Equal(t, seed, out)

	// file must now exist with the seed content
	data, err := os.ReadFile(filepath.Join(s.Dir(), "scores.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jas":5}`, string(data))
}

func TestLoad_ExistingFile(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "scores.json"), []byte(`{"vinita":20}`), 0644))

	out := make(map[string]int)
	require.NoError(t, s.Load("scores", &out, Static(map[string]int{})))

	assert.Equal(t, map[string]int{"vinita": 20}, out)
}

func TestLoad_CorruptFileResetsToSeed(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "scores.json"), []byte(`{not json`), 0644))

	out := make(map[string]int)
	require.NoError(t, s.Load("scores", &out, Static(map[string]int{})))

	assert.Empty(t, out)

	// subsequent reads must return the seed, not the corrupt content
	again := make(map[string]int)
	require.NoError(t, s.Load("scores", &again, Static(map[string]int{"other": 9})))
	assert.Empty(t, again)
}

func TestLoad_SeedNotCalledWhenFileExists(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "users.json"), []byte(`{}`), 0644))

	out := make(map[string]string)
	err = s.Load("users", &out, func() (interface{}, error) {
		t.Fatal("seed must not run for a parseable document")
		return nil, nil
	})
	require.NoError(t, err)
}

func TestSave_OverwritesAtomically(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("answers", map[string][]int{"jas": {1}}))
	require.NoError(t, s.Save("answers", map[string][]int{"jas": {1, 2}}))

	out := make(map[string][]int)
	require.NoError(t, s.Load("answers", &out, Static(map[string][]int{})))
	assert.Equal(t, []int{1, 2}, out["jas"])

	// no temp files left behind
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestPing(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Ping())
}
