package repository

import (
	"sync"

	"quiznight_backend/internal/model"
	"quiznight_backend/internal/store"
)

const answersDocument = "answers"

type AnswerRepository struct {
	store *store.Store

	mu      sync.Mutex
	answers model.Answers
}

func NewAnswerRepository(s *store.Store) (*AnswerRepository, error) {
	answers := make(model.Answers)
	if err := s.Load(answersDocument, &answers, store.Static(model.Answers{})); err != nil {
		return nil, err
	}
	return &AnswerRepository{store: s, answers: answers}, nil
}

func (r *AnswerRepository) HasAnswered(username string, questionID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.answers[username] {
		if id == questionID {
			return true
		}
	}
	return false
}

// MarkAnswered 记录答题槽位，每个题目每用户至多一次
func (r *AnswerRepository) MarkAnswered(username string, questionID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.answers[username] {
		if id == questionID {
			return nil
		}
	}
	r.answers[username] = append(r.answers[username], questionID)
	return r.store.Save(answersDocument, r.answers)
}

func (r *AnswerRepository) AnsweredBy(username string) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, len(r.answers[username]))
	copy(out, r.answers[username])
	return out
}
