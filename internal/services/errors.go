package services

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrForbidden              = errors.New("forbidden")
	ErrConflict               = errors.New("conflict")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrLevelNotFound          = errors.New("level not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrConsultantNotFound     = errors.New("consultant not found")
)
