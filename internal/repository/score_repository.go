package repository

import (
	"sync"

	"quiznight_backend/internal/model"
	"quiznight_backend/internal/store"
)

const scoresDocument = "scores"

type ScoreRepository struct {
	store *store.Store

	mu     sync.Mutex
	scores model.Scores
}

func NewScoreRepository(s *store.Store) (*ScoreRepository, error) {
	scores := make(model.Scores)
	if err := s.Load(scoresDocument, &scores, store.Static(model.Scores{})); err != nil {
		return nil, err
	}
	return &ScoreRepository{store: s, scores: scores}, nil
}

// EnsureUser 保证用户有分数条目，首次登录时初始化为0
func (r *ScoreRepository) EnsureUser(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scores[username]; !ok {
		r.scores[username] = 0
	}
	return r.store.Save(scoresDocument, r.scores)
}

// AddPoints 加分并落盘，分数只增不减
func (r *ScoreRepository) AddPoints(username string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scores[username] += points
	return r.store.Save(scoresDocument, r.scores)
}

func (r *ScoreRepository) Get(username string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	score, ok := r.scores[username]
	return score, ok
}

func (r *ScoreRepository) All() model.Scores {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(model.Scores, len(r.scores))
	for name, score := range r.scores {
		out[name] = score
	}
	return out
}
