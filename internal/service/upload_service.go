package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"quiznight_backend/internal/repository"
	"quiznight_backend/internal/util"

	"quiznight_backend/pkg/logger"

	"go.uber.org/zap"
)

// uploadBonusPoints 每个 (用户, 题目) 首次上传发放的固定奖励
const uploadBonusPoints = 10

type UploadService struct {
	UploadRepo *repository.UploadRepository
	ScoreRepo  *repository.ScoreRepository
	Provider   StorageProvider
}

func NewUploadService(uploadRepo *repository.UploadRepository, scoreRepo *repository.ScoreRepository, provider StorageProvider) *UploadService {
	return &UploadService{
		UploadRepo: uploadRepo,
		ScoreRepo:  scoreRepo,
		Provider:   provider,
	}
}

// SaveImage 校验并存储上传图片。文件名固定为 {username}_{qid}.jpg，
// 重复上传覆盖文件但不重复登记、不重复加分
func (s *UploadService) SaveImage(ctx context.Context, username string, questionID int, reader io.Reader, size int64) (string, error) {
	mimeType, head, err := util.SniffMimeType(reader, []string{"image/"})
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%d.jpg", username, questionID)
	body := io.MultiReader(bytes.NewReader(head), reader)

	if _, err := s.Provider.Upload(ctx, filename, body, size, mimeType); err != nil {
		return "", err
	}

	first, err := s.UploadRepo.Record(strconv.Itoa(questionID), filename)
	if err != nil {
		return "", err
	}

	if first {
		if err := s.ScoreRepo.AddPoints(username, uploadBonusPoints); err != nil {
			return "", err
		}
	}

	logger.Log.Info("Image uploaded",
		zap.String("username", username),
		zap.Int("question_id", questionID),
		zap.String("filename", filename),
		zap.Bool("first_upload", first),
	)

	return filename, nil
}
