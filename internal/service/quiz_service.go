package service

import (
	"quiznight_backend/internal/model"
	"quiznight_backend/internal/repository"
	"quiznight_backend/internal/util"

	"quiznight_backend/pkg/logger"

	"go.uber.org/zap"
)

type QuizService struct {
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	ScoreRepo    *repository.ScoreRepository
}

func NewQuizService(questionRepo *repository.QuestionRepository, answerRepo *repository.AnswerRepository, scoreRepo *repository.ScoreRepository) *QuizService {
	return &QuizService{
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		ScoreRepo:    scoreRepo,
	}
}

// Questions 返回题目列表的公开视图，正确答案不出现在响应里
func (s *QuizService) Questions() []model.QuestionView {
	questions := s.QuestionRepo.All()
	views := make([]model.QuestionView, len(questions))
	for i, q := range questions {
		views[i] = q.PublicView()
	}
	return views
}

// SubmitAnswer 处理一次答题。题目不存在时不占用答题槽位；
// 同一题目每用户只判一次分
func (s *QuizService) SubmitAnswer(username string, questionID int, answer string) (bool, error) {
	if s.AnswerRepo.HasAnswered(username, questionID) {
		return false, util.ErrAlreadyAnswered
	}

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return false, err
	}

	if err := s.AnswerRepo.MarkAnswered(username, questionID); err != nil {
		return false, err
	}

	if question.Answer == "" || question.Answer != answer {
		return false, nil
	}

	if err := s.ScoreRepo.AddPoints(username, question.Points); err != nil {
		return false, err
	}

	logger.Log.Info("Correct answer",
		zap.String("username", username),
		zap.Int("question_id", questionID),
		zap.Int("points", question.Points),
	)

	return true, nil
}
