package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bridgemart-backend/internal/domain"
)

// Err 传输层业务错误，带 HTTP 状态
type Err struct {
	Status int
	Msg    string
	Cause  error
}

func (e *Err) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return http.StatusText(e.Status)
}

func BadRequest(msg string) error   { return &Err{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &Err{Status: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Err{Status: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &Err{Status: http.StatusNotFound, Msg: msg} }
func Internal(msg string, cause error) error {
	return &Err{Status: http.StatusInternalServerError, Msg: msg, Cause: cause}
}

// OK 成功直接回 payload，错误统一走 Fail
func OK(c *gin.Context, data any) { c.JSON(http.StatusOK, data) }

func Created(c *gin.Context, data any) { c.JSON(http.StatusCreated, data) }

// Fail 域错误 → HTTP 状态 + {message}；未识别的一律 500 且不透出内部细节
func Fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	var ae *Err
	var ve *domain.ValidationError
	var te *domain.InvalidTransitionError
	switch {
	case errors.As(err, &ae):
		status = ae.Status
		msg = ae.Error()
	case errors.As(err, &ve):
		status = http.StatusBadRequest
		msg = ve.Error()
	case errors.As(err, &te):
		status = http.StatusBadRequest
		msg = te.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
		msg = err.Error()
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err) // 细节进访问日志，不回给调用方
	}
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}
