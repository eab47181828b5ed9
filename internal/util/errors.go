package util

import "net/http"

// DomainError carries a stable machine-readable code alongside a human
// message. Codes are part of the API contract and never change.
type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string { return e.Message }

var (
	ErrTestNotFound       = &DomainError{Code: "testNotFound", Message: "test not found", Status: http.StatusNotFound}
	ErrPartNotFound       = &DomainError{Code: "partNotFound", Message: "part not found", Status: http.StatusNotFound}
	ErrSectionNotFound    = &DomainError{Code: "sectionNotFound", Message: "section not found", Status: http.StatusNotFound}
	ErrLinkNotFound       = &DomainError{Code: "linkNotFound", Message: "link not found", Status: http.StatusNotFound}
	ErrTemplateNotFound   = &DomainError{Code: "templateNotFound", Message: "template not found", Status: http.StatusNotFound}
	ErrSubmissionNotFound = &DomainError{Code: "submissionNotFound", Message: "submission not found", Status: http.StatusNotFound}
	ErrResultNotFound     = &DomainError{Code: "resultNotFound", Message: "result not found", Status: http.StatusNotFound}
	ErrUserNotFound       = &DomainError{Code: "userNotFound", Message: "user not found", Status: http.StatusNotFound}

	ErrSubmissionIsScored = &DomainError{Code: "submissionIsScored", Message: "submission has already been graded", Status: http.StatusBadRequest}
	ErrMaxUsesReached     = &DomainError{Code: "maxUsesReached", Message: "link usage limit reached", Status: http.StatusBadRequest}
	ErrInvalidScores      = &DomainError{Code: "invalidScores", Message: "reading or listening score is invalid", Status: http.StatusBadRequest}
	ErrInvalidProperty    = &DomainError{Code: "invalidProperty", Message: "required property missing or malformed", Status: http.StatusBadRequest}
	ErrModuleNotAllowed   = &DomainError{Code: "moduleNotAllow", Message: "module is not allowed", Status: http.StatusBadRequest}
	ErrMaxParts           = &DomainError{Code: "maxParts", Message: "maximum number of parts reached", Status: http.StatusBadRequest}
	ErrPhoneRegistered    = &DomainError{Code: "phoneRegistered", Message: "phone number already registered", Status: http.StatusBadRequest}
	ErrInvalidCredentials = &DomainError{Code: "invalidCredentials", Message: "invalid phone or password", Status: http.StatusUnauthorized}
)
