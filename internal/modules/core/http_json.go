package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const internalServerErrorMessage = "Internal server error"

type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

var errTrailingData = errors.New("unexpected data after JSON value")

// RequestBody decodes a single JSON value into TRequest. Unknown fields and
// anything following the value are rejected.
func RequestBody[TRequest any](r *http.Request) (TRequest, error) {
	var request TRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&request); err != nil {
		return request, fmt.Errorf("invalid request body: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return request, fmt.Errorf("invalid request body: %w", errTrailingData)
	}

	return request, nil
}

type ResponseOption func(http.ResponseWriter, *http.Request)

func WithHeader(header, value string) ResponseOption {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add(header, value)
	}
}

func WriteOK(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusOK, body)
}

func WriteMessage(w http.ResponseWriter, r *http.Request, message string) {
	WriteResponse(w, r, http.StatusOK, MessageResponse{Message: message})
}

func WriteCreated(w http.ResponseWriter, r *http.Request, location string, body interface{}) {
	WriteResponse(w, r, http.StatusCreated, body, WithHeader("Location", location))
}

func WriteBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	WriteResponse(w, r, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
}

func WriteInternalServerError(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, r, http.StatusInternalServerError, ErrorResponse{Message: internalServerErrorMessage})
}

// WriteCommandError is the fault boundary for handler errors. Only CommandErrors
// below 500 reach the client as-is, everything else is logged and replaced with
// a generic internal server error.
func WriteCommandError(w http.ResponseWriter, r *http.Request, err error) {
	var commandErr CommandError
	if !errors.As(err, &commandErr) || commandErr.StatusCode >= http.StatusInternalServerError {
		LogError(r.Context(), "request failed", zap.Error(err))
		WriteInternalServerError(w, r)
		return
	}

	WriteResponse(w, r, commandErr.StatusCode, commandErr.Response())
}

func WriteResponse(
	w http.ResponseWriter,
	r *http.Request,
	statusCode int,
	body interface{},
	opts ...ResponseOption,
) {
	for _, opt := range opts {
		opt(w, r)
	}

	if body != nil {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(statusCode)
	writeBodyIfPresent(r.Context(), w, body)
}

func writeBodyIfPresent(ctx context.Context, w http.ResponseWriter, body interface{}) {
	if body == nil {
		return
	}

	responseBytes, err := json.Marshal(body)
	if err != nil {
		LogError(ctx, "failed to serialize response", zap.Error(err))
		return
	}

	if _, err := w.Write(responseBytes); err != nil {
		LogError(ctx, "failed to write response", zap.Error(err))
	}
}
