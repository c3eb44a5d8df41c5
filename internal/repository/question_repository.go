package repository

import (
	"sync"

	"quiznight_backend/internal/model"
	"quiznight_backend/internal/store"
	"quiznight_backend/internal/util"
)

const questionsDocument = "questions"

type QuestionRepository struct {
	store *store.Store

	mu        sync.Mutex
	questions []model.Question
}

func NewQuestionRepository(s *store.Store) (*QuestionRepository, error) {
	var questions []model.Question
	if err := s.Load(questionsDocument, &questions, store.Static(SeedQuestions())); err != nil {
		return nil, err
	}
	return &QuestionRepository{store: s, questions: questions}, nil
}

func (r *QuestionRepository) All() []model.Question {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

func (r *QuestionRepository) FindByID(id int) (*model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range r.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, util.ErrQuestionNotFound
}
