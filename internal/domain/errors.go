package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrEmptyTitle           = errors.New("title cannot be empty")
	ErrTitleTooLong         = errors.New("title cannot exceed 100 characters")
	ErrDescriptionTooLong   = errors.New("description cannot exceed 500 characters")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidDueDate       = errors.New("invalid due date (want YYYY-MM-DD)")
	ErrInvalidTimestamp     = errors.New("invalid timestamp (want YYYY-MM-DDTHH:MM:SS)")
	ErrNotTaskArray         = errors.New("expected an array of task records")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrConfigFileCorrupted  = errors.New("config file is corrupted")
	ErrConfigExists         = errors.New("config file already exists")
	ErrNotSaved             = errors.New("changes were not saved")
	ErrConfirmationDeclined = errors.New("operation cancelled")
)
