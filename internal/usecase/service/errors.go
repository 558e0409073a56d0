package service

import "fmt"

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func WrapError(domainError *DomainError, err error) error {
	return &DomainError{
		Code:    domainError.Code,
		Message: domainError.Message,
		Err:     err,
	}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	// NOT_FOUND
	ErrUserNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "user not found",
	}
	ErrProjectNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "project not found",
	}
	ErrTaskNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "task not found",
	}
	ErrCommentNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "comment not found",
	}
	ErrAttachmentNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "attachment not found",
	}
	ErrMemberNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "user is not a member of this project",
	}

	// EMAIL_EXISTS
	ErrEmailExists = &DomainError{
		Code:    "EMAIL_EXISTS",
		Message: "email already registered",
	}

	// ALREADY_MEMBER
	ErrAlreadyMember = &DomainError{
		Code:    "ALREADY_MEMBER",
		Message: "user is already a member of this project",
	}

	// NOT_MEMBER
	ErrNotMember = &DomainError{
		Code:    "NOT_MEMBER",
		Message: "assignee must be a member of the project",
	}

	// VALIDATION_FAILED
	ErrValidation = &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
	}

	// INVALID_INPUT
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}
)
