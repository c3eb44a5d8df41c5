package repository

import (
	"sync"

	"quiznight_backend/internal/model"
	"quiznight_backend/internal/store"
)

const uploadsDocument = "uploads"

type UploadRepository struct {
	store *store.Store

	mu      sync.Mutex
	uploads model.UploadLog
}

func NewUploadRepository(s *store.Store) (*UploadRepository, error) {
	uploads := make(model.UploadLog)
	if err := s.Load(uploadsDocument, &uploads, store.Static(model.UploadLog{})); err != nil {
		return nil, err
	}
	return &UploadRepository{store: s, uploads: uploads}, nil
}

// Record 登记上传文件名。同一文件名不重复追加，返回是否为首次登记，
// 调用方据此决定是否发放奖励分
func (r *UploadRepository) Record(questionID, filename string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.uploads[questionID] {
		if existing == filename {
			return false, nil
		}
	}
	r.uploads[questionID] = append(r.uploads[questionID], filename)
	return true, r.store.Save(uploadsDocument, r.uploads)
}

func (r *UploadRepository) All() model.UploadLog {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(model.UploadLog, len(r.uploads))
	for qid, files := range r.uploads {
		copies := make([]string, len(files))
		copy(copies, files)
		out[qid] = copies
	}
	return out
}
