package github

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"
)

// ErrorType represents different categories of GitHub API errors
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Error represents a structured error from a GitHub operation
type Error struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Cause      error     `json:"-"`
	Resource   string    `json:"resource,omitempty"`
	Field      string    `json:"field,omitempty"`
	Code       string    `json:"code,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the specified type and message
func NewError(errorType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound reports whether err is a GitHub not found error
func IsNotFound(err error) bool {
	var ghErr *Error
	return errors.As(err, &ghErr) && ghErr.Type == ErrorTypeNotFound
}

// WrapGitHubError wraps a GitHub API error into our structured error type
func WrapGitHubError(err error, resource string) *Error {
	if err == nil {
		return nil
	}

	var ghErr *Error
	if errors.As(err, &ghErr) {
		if ghErr.Resource == "" {
			ghErr.Resource = resource
		}
		return ghErr
	}

	// RateLimitError and AbuseRateLimitError must be checked before
	// ErrorResponse, they carry their own response.
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &Error{
			Type:       ErrorTypeRateLimit,
			Message:    fmt.Sprintf("Rate limit exceeded. Reset at %v", rateErr.Rate.Reset.Time),
			Cause:      err,
			Resource:   resource,
			StatusCode: statusCode(rateErr.Response),
		}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &Error{
			Type:       ErrorTypeRateLimit,
			Message:    "Secondary rate limit exceeded. Please wait before retrying",
			Cause:      err,
			Resource:   resource,
			StatusCode: statusCode(abuseErr.Response),
		}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return parseGitHubAPIError(respErr, resource)
	}

	if isNetworkError(err) {
		return &Error{
			Type:     ErrorTypeNetwork,
			Message:  "Network error occurred. Please check your connection and try again",
			Cause:    err,
			Resource: resource,
		}
	}

	return &Error{
		Type:     ErrorTypeUnknown,
		Message:  err.Error(),
		Cause:    err,
		Resource: resource,
	}
}

// parseGitHubAPIError parses GitHub API error responses into structured errors
func parseGitHubAPIError(ghErr *github.ErrorResponse, resource string) *Error {
	baseErr := &Error{
		Resource:   resource,
		Cause:      ghErr,
		StatusCode: ghErr.Response.StatusCode,
	}

	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized:
		baseErr.Type = ErrorTypeAuth
		baseErr.Message = "Authentication failed. Please check the GH_PAT token"

	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(ghErr.Message), "rate limit") {
			baseErr.Type = ErrorTypeRateLimit
			baseErr.Message = "GitHub API rate limit exceeded. Please wait before retrying"
		} else {
			baseErr.Type = ErrorTypePermission
			baseErr.Message = "Insufficient permissions. Your token may not have the required scopes"
			if strings.Contains(resource, "repository") {
				baseErr.Message += ". Required scopes: repo, and permission to create repositories in the organization"
			}
		}

	case http.StatusNotFound:
		baseErr.Type = ErrorTypeNotFound

		switch {
		case strings.Contains(resource, "organization"):
			baseErr.Message = "Organization not found. Check the organization name and your membership"
		case strings.Contains(resource, "repository"):
			baseErr.Message = "Repository not found. Check the repository name and your access permissions"
		default:
			baseErr.Message = "Resource not found"
		}

	case http.StatusConflict:
		baseErr.Type = ErrorTypeConflict
		baseErr.Message = "Resource conflict occurred"

	case http.StatusUnprocessableEntity:
		baseErr.Type = ErrorTypeValidation
		baseErr.Message = "Validation failed"

		if len(ghErr.Errors) > 0 {
			var validationErrors []string
			for _, err := range ghErr.Errors {
				if err.Field != "" {
					validationErrors = append(validationErrors, fmt.Sprintf("%s: %s", err.Field, err.Message))
					if baseErr.Field == "" {
						baseErr.Field = err.Field
						baseErr.Code = err.Code
					}
				} else {
					validationErrors = append(validationErrors, err.Message)
				}
			}
			baseErr.Message = fmt.Sprintf("Validation failed: %s", strings.Join(validationErrors, "; "))
		}

	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		baseErr.Type = ErrorTypeNetwork
		baseErr.Message = "GitHub API is temporarily unavailable. Please try again later"

	default:
		baseErr.Type = ErrorTypeUnknown
		baseErr.Message = ghErr.Message
		if baseErr.Message == "" {
			baseErr.Message = http.StatusText(ghErr.Response.StatusCode)
		}
	}

	return baseErr
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// isNetworkError checks if an error is a network-related error
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no such host",
		"i/o timeout",
		"dial tcp",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation error for field '%s' (value: %s): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	if len(e) == 1 {
		return e[0].Error()
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed with %d errors: %s", len(e), strings.Join(messages, "; "))
}

// Add adds a validation error to the collection
func (e *ValidationErrors) Add(field, value, message string) {
	*e = append(*e, ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}
