package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ludo-technologies/empdash/domain"
)

// ErrorCategorizerImpl implements the ErrorCategorizer interface
type ErrorCategorizerImpl struct {
	patterns map[domain.ErrorCategory][]string
}

// NewErrorCategorizer creates a new error categorizer
func NewErrorCategorizer() domain.ErrorCategorizer {
	return &ErrorCategorizerImpl{
		patterns: initializeErrorPatterns(),
	}
}

// codeCategories maps domain error codes to categories
var codeCategories = map[string]domain.ErrorCategory{
	domain.ErrCodeInvalidInput:      domain.ErrorCategoryInput,
	domain.ErrCodeDataUnavailable:   domain.ErrorCategoryData,
	domain.ErrCodeUpstreamFailure:   domain.ErrorCategoryUpstream,
	domain.ErrCodeConfigError:       domain.ErrorCategoryConfig,
	domain.ErrCodeOutputError:       domain.ErrorCategoryOutput,
	domain.ErrCodeUnsupportedFormat: domain.ErrorCategoryInput,
}

// categoryStatus maps categories to HTTP statuses
var categoryStatus = map[domain.ErrorCategory]int{
	domain.ErrorCategoryInput:    http.StatusBadRequest,
	domain.ErrorCategoryData:     http.StatusNotFound,
	domain.ErrorCategoryUpstream: http.StatusInternalServerError,
	domain.ErrorCategoryConfig:   http.StatusInternalServerError,
	domain.ErrorCategoryOutput:   http.StatusInternalServerError,
	domain.ErrorCategoryTimeout:  http.StatusGatewayTimeout,
	domain.ErrorCategoryUnknown:  http.StatusInternalServerError,
}

// initializeErrorPatterns covers errors that reach the edge without a
// domain code, such as CLI argument and file system failures
func initializeErrorPatterns() map[domain.ErrorCategory][]string {
	return map[domain.ErrorCategory][]string{
		domain.ErrorCategoryInput: {
			"invalid input",
			"invalid argument",
			"unknown profile",
			"must be an integer",
		},
		domain.ErrorCategoryConfig: {
			"config",
			"configuration",
			"toml",
			"yaml",
			"no fixture files",
		},
		domain.ErrorCategoryTimeout: {
			"timeout",
			"timed out",
			"deadline",
		},
		domain.ErrorCategoryOutput: {
			"write",
			"cannot create",
			"permission denied",
		},
		domain.ErrorCategoryUpstream: {
			"database",
			"connection",
			"query failed",
		},
	}
}

// categoryOrder fixes pattern matching precedence
var categoryOrder = []domain.ErrorCategory{
	domain.ErrorCategoryTimeout,
	domain.ErrorCategoryInput,
	domain.ErrorCategoryConfig,
	domain.ErrorCategoryOutput,
	domain.ErrorCategoryUpstream,
}

// Categorize determines the category of an error
func (ec *ErrorCategorizerImpl) Categorize(err error) *domain.CategorizedError {
	if err == nil {
		return nil
	}

	if category, ok := codeCategories[domain.CodeOf(err)]; ok {
		return ec.categorized(category, err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return ec.categorized(domain.ErrorCategoryData, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ec.categorized(domain.ErrorCategoryTimeout, err)
	}

	errMsg := strings.ToLower(err.Error())
	for _, category := range categoryOrder {
		if containsAnyPattern(errMsg, ec.patterns[category]) {
			return ec.categorized(category, err)
		}
	}

	// Default to unknown category
	return &domain.CategorizedError{
		Category: domain.ErrorCategoryUnknown,
		Message:  err.Error(),
		Status:   categoryStatus[domain.ErrorCategoryUnknown],
		Original: err,
	}
}

func (ec *ErrorCategorizerImpl) categorized(category domain.ErrorCategory, err error) *domain.CategorizedError {
	return &domain.CategorizedError{
		Category: category,
		Message:  ec.getCategoryMessage(category),
		Status:   categoryStatus[category],
		Original: err,
	}
}

// GetRecoverySuggestions returns recovery suggestions for an error category
func (ec *ErrorCategorizerImpl) GetRecoverySuggestions(category domain.ErrorCategory) []string {
	suggestions := map[domain.ErrorCategory][]string{
		domain.ErrorCategoryInput: {
			"Entity ids are integers, e.g. empdash render employee 1",
			"Profile types are Employee or Team",
		},
		domain.ErrorCategoryData: {
			"Try: empdash options employee to list valid ids",
			"Check that the dataset contains the requested entity",
		},
		domain.ErrorCategoryUpstream: {
			"Check the database connection string (data.dsn)",
			"Verify the model file matches the feature columns",
		},
		domain.ErrorCategoryConfig: {
			"Verify configuration file format and values",
			"Try: empdash init to generate a valid config file",
		},
		domain.ErrorCategoryTimeout: {
			"Increase output.timeout_seconds or lower the concurrency",
		},
		domain.ErrorCategoryOutput: {
			"Ensure output directory exists and is writable",
			"Try writing to a different location",
		},
		domain.ErrorCategoryUnknown: {
			"Run with --log-level debug for detailed error information",
			"Report the issue if it persists",
		},
	}

	if sug, ok := suggestions[category]; ok {
		return sug
	}
	return []string{"Check the error message for more details"}
}

// getCategoryMessage returns a user-friendly message for an error category
func (ec *ErrorCategorizerImpl) getCategoryMessage(category domain.ErrorCategory) string {
	messages := map[domain.ErrorCategory]string{
		domain.ErrorCategoryInput:    "Invalid request input",
		domain.ErrorCategoryData:     "Requested data is not available",
		domain.ErrorCategoryUpstream: "A data source, classifier or chart backend failed",
		domain.ErrorCategoryConfig:   "Configuration file or settings error",
		domain.ErrorCategoryTimeout:  "Operation timed out",
		domain.ErrorCategoryOutput:   "Failed to generate or write output",
		domain.ErrorCategoryUnknown:  "An unexpected error occurred",
	}

	if msg, ok := messages[category]; ok {
		return msg
	}
	return "An error occurred"
}

// containsAnyPattern checks if a string contains any of the given patterns
func containsAnyPattern(str string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(str, pattern) {
			return true
		}
	}
	return false
}
