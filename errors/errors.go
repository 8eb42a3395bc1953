package errors

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Error codes grouped by the relay's error taxonomy.
const (
	// Input validation errors (HTTP 400)
	ErrMissingParameter   = 40001 // 缺少必填参数
	ErrMissingCredentials = 40002 // 缺少API凭证

	// Rate limit errors (HTTP 429)
	ErrRateLimitExceeded = 42901

	// Upstream errors
	ErrUpstreamRejected = 50201 // 上游返回非2xx，透传其状态码
	ErrTransportFailure = 50001 // 上游无响应（网络/超时）
	ErrSigningFailure   = 50002
)

// APIError represents a JSON error response body. Every error path through
// the relay terminates in one of these; raw errors never reach the client.
type APIError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("API Error %d: %s", e.Code, e.Message)
}

// NewAPIError creates a new API error
func NewAPIError(code int, message string, data interface{}) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// RespondWithError sends an error response and aborts the handler chain.
func RespondWithError(c *gin.Context, httpStatus int, apiError *APIError) {
	c.JSON(httpStatus, apiError)
	c.Abort()
}

// Input validation errors
func NewMissingParameterError(fields ...string) *APIError {
	return NewAPIError(ErrMissingParameter,
		fmt.Sprintf("missing required parameter(s): %s", strings.Join(fields, ", ")),
		gin.H{"fields": fields})
}

func NewMissingCredentialsError() *APIError {
	return NewAPIError(ErrMissingCredentials,
		"missing API credentials: X-API-Key and X-API-Secret headers are required", nil)
}

// Rate limit errors
func NewRateLimitExceededError(key string) *APIError {
	return NewAPIError(ErrRateLimitExceeded, "rate limit exceeded, please retry later", gin.H{
		"client": key,
	})
}

// Upstream errors
func NewUpstreamRejectedError(status, code int, message string) *APIError {
	return NewAPIError(ErrUpstreamRejected, "upstream request rejected", gin.H{
		"upstream_status":  status,
		"upstream_code":    code,
		"upstream_message": message,
	})
}

func NewTransportFailureError() *APIError {
	return NewAPIError(ErrTransportFailure, "upstream unreachable", nil)
}

func NewSigningFailureError() *APIError {
	return NewAPIError(ErrSigningFailure, "failed to sign upstream request", nil)
}
