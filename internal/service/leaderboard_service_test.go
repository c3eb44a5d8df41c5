package service

import (
	"encoding/json"
	"testing"

	"quiznight_backend/internal/model"
	"quiznight_backend/internal/repository"
	"quiznight_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboard(t *testing.T, scores map[string]int) *LeaderboardService {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	scoreRepo, err := repository.NewScoreRepository(s)
	require.NoError(t, err)
	for name, pts := range scores {
		require.NoError(t, scoreRepo.EnsureUser(name))
		if pts > 0 {
			require.NoError(t, scoreRepo.AddPoints(name, pts))
		}
	}

	return NewLeaderboardService(scoreRepo)
}

func TestEntries_SortedByScoreDescending(t *testing.T) {
	svc := newLeaderboard(t, map[string]int{"a": 5, "b": 20, "c": 5})

	entries := svc.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, model.LeaderboardEntry{Username: "b", Score: 20}, entries[0])

	// ties broken by username ascending
	assert.Equal(t, model.LeaderboardEntry{Username: "a", Score: 5}, entries[1])
	assert.Equal(t, model.LeaderboardEntry{Username: "c", Score: 5}, entries[2])
}

func TestEntries_Empty(t *testing.T) {
	svc := newLeaderboard(t, nil)
	assert.Empty(t, svc.Entries())
}

func TestLeaderboardEntry_WireFormat(t *testing.T) {
	entries := []model.LeaderboardEntry{
		{Username: "b", Score: 20},
		{Username: "a", Score: 5},
	}

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `[["b",20],["a",5]]`, string(data))

	var decoded []model.LeaderboardEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entries, decoded)
}
