package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "An unexpected error occurred while processing the request")
	SaveDataError       = NewSimple(400, "An error occurred while saving the data, check the provided fields and try again")

	NotFoundError         = NewSimple(404, "Resource not found")
	InvalidIDError        = NewSimple(400, "The provided ID is invalid, IDs must be UUIDs")
	IDMismatchError       = NewSimple(400, "The ID in the body does not match the ID in the path")
	UnauthorizedError     = NewSimple(401, "Unauthorized")
	InvalidAuthTokenError = NewSimple(401, "Invalid or expired authentication token")

	/*
	 * Accounts
	 */
	EmailTakenError                   = NewSimple(400, "Email already registered")
	InvalidCredentialsError           = NewSimple(401, "Invalid email or password")
	AccountInactiveError              = NewSimple(403, "Account is inactive")
	MissingCurrentPasswordError       = NewSimple(400, "Enter your current password")
	WrongCurrentPasswordError         = NewSimple(400, "Current password is incorrect")
	PasswordTooShortError             = NewSimple(400, "The new password must have at least 6 characters")
	PasswordConfirmationMismatchError = NewSimple(400, "The password confirmation does not match the new password")

	/*
	 * Companies
	 */
	CompanyAlreadyRegisteredError = NewSimple(400, "You have already registered a company with this CNPJ")
	OwnerNotFoundError            = NewSimple(400, "Owner account not found")
	InvalidCNPJError              = NewSimple(400, "The provided CNPJ is invalid, it must have 14 digits and valid check digits")
	LookupFailedError             = NewSimple(502, "Failed to query the CNPJ")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "notblank":
			problems[field] = append(problems[field], "This field cannot be blank")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "cnpj":
			problems[field] = append(problems[field], "Value must be a valid CNPJ")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

// FromStoreError collapses a persistence failure into one of the two
// messages callers are allowed to see: constraint and conflict failures
// get the "error saving" message, everything else the generic one.
func FromStoreError(err error) *APIError {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return SaveDataError
	default:
		return InternalServerError
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

// NewRegistryError wraps the message the company registry sent back
// alongside an error status.
func NewRegistryError(msg string) *APIError {
	return NewSimple(http.StatusBadRequest, msg)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' is required", name)
}
