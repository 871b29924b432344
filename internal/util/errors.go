package util

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

var (
	ErrBusy          = errors.New("another request from this control is still in progress")
	ErrWebhookFailed = errors.New("webhook call failed")
)

// ValidationError is returned before any network call when user input is
// incomplete. Errors maps field names to messages.
type ValidationError struct {
	Errors  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

func NewValidationError(message string, errs map[string]string) *ValidationError {
	if errs == nil {
		errs = map[string]string{}
	}
	return &ValidationError{
		Message: message,
		Errors:  errs,
	}
}

// ExtractionError means the text-extraction step failed and nothing was
// forwarded. Message is safe to show to the user.
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// HandleError maps the errors above onto the error envelope. fallback is the
// message used for anything unrecognised.
func HandleError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *ValidationError
	var extractionErr *ExtractionError
	switch {
	case errors.As(err, &validationErr):
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: validationErr.Message,
			Details: validationErr.Errors,
		}, err)
	case errors.As(err, &extractionErr):
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: extractionErr.Message,
		}, err)
	case errors.Is(err, ErrBusy):
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: ErrBusy.Error(),
		})
	case errors.Is(err, ErrWebhookFailed):
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: fallback,
		}, err)
	}
	return ErrorResponse(c, ErrorResponseFormat{Message: fallback}, err)
}
