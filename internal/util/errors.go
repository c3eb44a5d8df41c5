package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAlreadyAnswered    = errors.New("Already answered")
	ErrQuestionNotFound   = errors.New("Question not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidFileType    = errors.New("invalid file type")
)
