package service

import (
	"sort"

	"quiznight_backend/internal/model"
	"quiznight_backend/internal/repository"
)

type LeaderboardService struct {
	ScoreRepo *repository.ScoreRepository
}

func NewLeaderboardService(scoreRepo *repository.ScoreRepository) *LeaderboardService {
	return &LeaderboardService{ScoreRepo: scoreRepo}
}

// Entries 返回排行榜：分数降序，同分按用户名升序
func (s *LeaderboardService) Entries() []model.LeaderboardEntry {
	scores := s.ScoreRepo.All()

	entries := make([]model.LeaderboardEntry, 0, len(scores))
	for username, score := range scores {
		entries = append(entries, model.LeaderboardEntry{Username: username, Score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Username < entries[j].Username
	})

	return entries
}
