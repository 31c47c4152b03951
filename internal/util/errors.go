package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrNameTaken            = errors.New("username already taken")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidRole          = errors.New("role must be student or admin")
	ErrQuizSetNotFound      = errors.New("quiz set not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrAttemptCompleted     = errors.New("attempt already completed")
	ErrNotAttemptOwner      = errors.New("attempt belongs to another user")
	ErrQuestionNotInAttempt = errors.New("question is not part of this attempt")
	ErrAlreadyAnswered      = errors.New("question already answered in this attempt")
	ErrResultNotFound       = errors.New("result not found")
)
