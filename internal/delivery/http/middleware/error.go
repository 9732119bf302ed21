package middleware

import (
	"errors"
	"log"

	"job-bridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, code, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message, Data: data, Cause: cause}
}

// Internal is the 500 every unexpected failure collapses to. The cause is
// logged, never rendered.
func Internal(cause error) *AppError {
	return NewAppError(fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, nil, cause)
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered | method=%s path=%s panic=%v", c.Method(), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, code, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("request failed | method=%s path=%s status=%d error=%v", c.Method(), c.Path(), status, err)
		}
		return response.Error(c, status, code, msg, data)
	}
}

func normalizeError(err error) (int, string, string, interface{}) {
	if err == nil {
		return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 || appErr.StatusCode >= 500 {
			return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, nil
		}

		status := appErr.StatusCode
		code := appErr.Code
		if code == "" {
			code = response.CodeForStatus(status)
		}
		return status, code, appErr.Message, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, nil
		}
		return status, response.CodeForStatus(status), fiberErr.Message, nil
	}

	return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, nil
}
