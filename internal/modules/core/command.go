package core

import (
	"errors"
	"fmt"
	"net/http"
)

type Unit struct{}

type CommandError struct {
	Payload    interface{}
	StatusCode int
	Reason     *string
}

type CommandErrorOption func(*CommandError)

func WithReason(reason string) CommandErrorOption {
	return func(e *CommandError) {
		e.Reason = &reason
	}
}

func NewCommandError(statusCode int, payload interface{}, opts ...CommandErrorOption) CommandError {
	e := CommandError{
		StatusCode: statusCode,
		Payload:    payload,
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func NewNotFoundError(err error, reason string) CommandError {
	return NewCommandError(http.StatusNotFound, err, WithReason(reason))
}

func (r CommandError) Error() string {
	var values struct {
		Payload    interface{}
		StatusCode int
		Reason     string
	}

	values.Payload = r.Payload
	values.StatusCode = r.StatusCode

	if r.Reason != nil {
		values.Reason = *r.Reason
	}

	return fmt.Sprintf("%+v", values)
}

func (r CommandError) Unwrap() error {
	if err, ok := r.Payload.(error); ok {
		return err
	}

	return nil
}

// Message is the client facing description of the error.
func (r CommandError) Message() string {
	if r.Reason != nil {
		return *r.Reason
	}

	switch p := r.Payload.(type) {
	case error:
		return p.Error()
	case string:
		return p
	}

	return http.StatusText(r.StatusCode)
}

func (r CommandError) Response() ErrorResponse {
	response := ErrorResponse{Message: r.Message()}

	var validationErr ValidationError
	if err, ok := r.Payload.(error); ok && errors.As(err, &validationErr) {
		for _, e := range validationErr.ValidationErrors {
			response.Errors = append(response.Errors, e.Error())
		}
	}

	return response
}
