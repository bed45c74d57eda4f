package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Code string

const (
	CodeInvalidArgument     Code = "INVALID_ARGUMENT"
	CodeNotFound            Code = "NOT_FOUND"
	CodeAlreadyExists       Code = "ALREADY_EXISTS"
	CodeMissingParameters   Code = "MISSING_PARAMETERS"
	CodeInvalidQueryFilters Code = "INVALID_QUERY_FILTERS"
	CodeNotAvailable        Code = "NOT_AVAILABLE"
	CodeConflict            Code = "CONFLICT"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeForbidden           Code = "FORBIDDEN"
	CodeInternal            Code = "INTERNAL"
)

// Error carries a machine code, the entity kind it refers to and a
// human-readable message. Services raise these; handlers map them to HTTP.
type Error struct {
	Code    Code   `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

// KindName converts a snake_case entity kind into its display form,
// e.g. "book_status" -> "BookStatus".
func KindName(kind string) string {
	parts := strings.Split(kind, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, "")
}

func NotFound(kind string) *Error {
	return &Error{Code: CodeNotFound, Kind: kind, Message: fmt.Sprintf("%s not found", KindName(kind))}
}

func AlreadyExists(kind string) *Error {
	return &Error{Code: CodeAlreadyExists, Kind: kind, Message: fmt.Sprintf("%s already exists", KindName(kind))}
}

func MissingParameters(kind string) *Error {
	return &Error{Code: CodeMissingParameters, Kind: kind, Message: fmt.Sprintf("%s is missing parameters", KindName(kind))}
}

func InvalidQueryFilters(kind string) *Error {
	return &Error{Code: CodeInvalidQueryFilters, Kind: kind, Message: fmt.Sprintf("%s's query is missing or contains invalid data", KindName(kind))}
}

func NotAvailable(kind string) *Error {
	return &Error{Code: CodeNotAvailable, Kind: kind, Message: fmt.Sprintf("%s is not available", KindName(kind))}
}

func Invalid(msg string) *Error  { return &Error{Code: CodeInvalidArgument, Message: msg} }
func Conflict(msg string) *Error { return &Error{Code: CodeConflict, Message: msg} }
func Internal(msg string) *Error { return &Error{Code: CodeInternal, Message: msg} }

// Loan and subscription rule violations.
func ExceededMaxRenewals(max int) *Error {
	return &Error{Code: CodeConflict, Kind: "loan",
		Message: fmt.Sprintf("The loan has exceeded the %d authorized renewals", max)}
}

func ReturnDateExceedsMaxAllowedDays(days int) *Error {
	return &Error{Code: CodeInvalidArgument, Kind: "loan",
		Message: fmt.Sprintf("The return date must be within %d days", days)}
}

func LoanAlreadyFinished() *Error {
	return &Error{Code: CodeConflict, Kind: "loan",
		Message: "This book has already been returned and the loan has been finished"}
}

func SubscriptionAlreadyFinished() *Error {
	return &Error{Code: CodeConflict, Kind: "active_plan",
		Message: "This subscription has already been finished or canceled"}
}

func FinishDateBeforeStartDate() *Error {
	return &Error{Code: CodeInvalidArgument, Message: "Finish date cannot be before start date"}
}

func DateInPast() *Error {
	return &Error{Code: CodeInvalidArgument, Message: "The date cannot be in the past"}
}

func DateInFuture() *Error {
	return &Error{Code: CodeInvalidArgument, Message: "The date cannot be in the future"}
}

func InvalidLogin() *Error {
	return &Error{Code: CodeUnauthorized, Message: "Invalid email or password"}
}

func InvalidPasswordReset() *Error {
	return &Error{Code: CodeInvalidArgument, Message: "Invalid password"}
}

func InvalidOrExpiredToken() *Error {
	return &Error{Code: CodeUnauthorized, Message: "The token has expired or is invalid"}
}

func ImportingDefaultDataUnauthorized() *Error {
	return &Error{Code: CodeForbidden, Message: "Server currently does not allow importing default data"}
}

func FailedToSendEmail(email string) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf("Failed to send email to %s", email)}
}

// ToHTTPStatus maps a service error to the client-facing status code.
func ToHTTPStatus(err error) int {
	var api *Error
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument, CodeMissingParameters, CodeInvalidQueryFilters:
			return http.StatusBadRequest
		case CodeUnauthorized:
			return http.StatusUnauthorized
		case CodeForbidden:
			return http.StatusForbidden
		case CodeNotFound:
			return http.StatusNotFound
		case CodeAlreadyExists, CodeConflict:
			return http.StatusConflict
		case CodeNotAvailable:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
