package apihandlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// APIError defines standard error response
// Example: { "error": { "code": "validation_error", "message": "...", "details": [...] } }
type APIError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail names the offending request field and why it was rejected.
type FieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.JSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

// Convenience wrappers
func NotFound(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusNotFound, "not_found", msg)
}

func MethodNotAllowed(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusMethodNotAllowed, "method_not_allowed", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

// Unprocessable reports a request that failed schema validation.
func Unprocessable(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Error: APIError{
		Code:    "validation_error",
		Message: "Invalid request body",
		Details: validationDetails(err),
	}})
}

// validationDetails converts binding errors into per-field details.
func validationDetails(err error) []FieldDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldDetail{
				Field:  strings.ToLower(fe.Field()),
				Reason: "field " + fe.Tag(),
			})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldDetail{{Field: field, Reason: "expected " + typeErr.Type.String() + ", got " + typeErr.Value}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []FieldDetail{{Field: "body", Reason: "malformed JSON: " + syntaxErr.Error()}}
	}

	if errors.Is(err, errTrailingData) {
		return []FieldDetail{{Field: "body", Reason: "malformed JSON: " + err.Error()}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldDetail{{Field: "body", Reason: "request body is empty"}}
	}

	return []FieldDetail{{Field: "body", Reason: err.Error()}}
}
