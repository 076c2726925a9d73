package core

import (
	"context"
	"errors"
	"net/http"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi/middleware"

	"go.uber.org/zap"
)

const loggerContextKey contextKey = "logger"

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// Logger returns the request scoped logger, or a no-op logger outside of a request.
func Logger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok && logger != nil {
		return logger
	}

	return zap.NewNop()
}

func LogError(ctx context.Context, msg string, fields ...zap.Field) {
	Logger(ctx).Error(msg, fields...)
}

var _ mediator.PipelineBehavior = (*RequestLoggingBehavior)(nil)

type RequestLoggingBehavior struct {
	Logger *zap.Logger
}

func (b *RequestLoggingBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	var logFields []zap.Field

	if requestID := middleware.GetReqID(ctx); requestID != "" {
		logFields = append(logFields, zap.String("request_id", requestID))
	}

	if correlationID := CorrelationID(ctx); correlationID != "" {
		logFields = append(logFields, zap.String("correlation_id", correlationID))
	}

	if request != nil {
		logFields = append(logFields, zap.Any("request_body", request))
	}

	b.Logger.Debug("processing request", logFields...)

	return next(ctx, request)
}

var _ mediator.PipelineBehavior = (*HandlerErrorLoggingBehavior)(nil)

type HandlerErrorLoggingBehavior struct {
	Logger *zap.Logger
}

func (b *HandlerErrorLoggingBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	response, err := next(ctx, request)
	if err == nil {
		return response, nil
	}

	fields := []zap.Field{zap.Error(err)}
	if correlationID := CorrelationID(ctx); correlationID != "" {
		fields = append(fields, zap.String("correlation_id", correlationID))
	}

	var commandErr CommandError
	if errors.As(err, &commandErr) && commandErr.StatusCode < http.StatusInternalServerError {
		b.Logger.Warn("handler rejected request", fields...)
	} else {
		b.Logger.Error("handler returned error", fields...)
	}

	return response, err
}
