package controller

import (
	"errors"

	"quiznight_backend/internal/service"
	"quiznight_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetQuestions 处理 GET /question，返回不含答案的题目列表
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.QuizService.Questions())
}

type AnswerRequest struct {
	ID     int    `json:"id" binding:"required"`
	Answer string `json:"answer"`
}

// SubmitAnswer 处理 POST /answer
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	correct, err := c.QuizService.SubmitAnswer(user.Username, req.ID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadyAnswered):
			util.BadRequest(ctx, util.ErrAlreadyAnswered.Error())
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, util.ErrQuestionNotFound.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"correct": correct})
}
