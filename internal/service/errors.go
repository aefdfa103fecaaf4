package service

import "github.com/vedran77/missive/pkg/apperror"

var (
	ErrPasswordMismatch    = apperror.New(apperror.CodeValidation, "password and confirm password do not match")
	ErrDuplicateCredential = apperror.New(apperror.CodeDuplicateCredential, "username or email is unavailable")
	ErrInvalidCredentials  = apperror.New(apperror.CodeInvalidCredentials, "invalid username or password")
	ErrUnauthorized        = apperror.New(apperror.CodeUnauthorized, "invalid or expired token")
	ErrSelfMessage         = apperror.New(apperror.CodeSelfMessage, "cannot send a message to yourself")
	ErrInvalidContent      = apperror.New(apperror.CodeInvalidContent, "message content is empty or too long")
	ErrRecipientNotFound   = apperror.New(apperror.CodeRecipientNotFound, "recipient not found")
)
