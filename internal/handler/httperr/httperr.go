package httperr

import (
	"net/http"

	"coffee-verifier/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int  `json:"-"`
	Success bool `json:"success"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type RetryDetail struct {
	Retryable bool `json:"retryable"`
}

type ValidationDetail struct {
	Reason string `json:"reason"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUsecaseError maps the use-case error categories onto HTTP statuses.
// fallback is the message used for errors outside every known category.
func AbortWithUsecaseError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", ValidationDetail{Reason: err.Error()})
	case errs.Is(err, errs.ErrBatchNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Batch not found", nil)
	case errs.Is(err, errs.ErrRequestNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Verification request not found", nil)
	case errs.Is(err, errs.ErrStatusConflict):
		AbortWithError(c, http.StatusConflict, err, "Verification request already resolved", nil)
	case errs.Is(err, errs.ErrOracleTimeout):
		AbortWithError(c, http.StatusGatewayTimeout, err, "Oracle request timed out", RetryDetail{Retryable: true})
	case errs.Is(err, errs.ErrTransientOracle):
		AbortWithError(c, http.StatusInternalServerError, err, "Oracle request failed", RetryDetail{Retryable: true})
	case errs.Is(err, errs.ErrPersistence):
		AbortWithError(c, http.StatusInternalServerError, err, "Failed to persist verification state", RetryDetail{Retryable: true})
	default:
		AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
