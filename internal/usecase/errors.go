package usecase

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Domain-rule violations. Handlers map these to 400.
var (
	ErrInvalidRemark = &DomainError{
		Code:    "INVALID_REMARK",
		Message: "remark must be Pending, Approved or Rejected",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be a positive number",
	}
	ErrAttachmentTooLarge = &DomainError{
		Code:    "ATTACHMENT_TOO_LARGE",
		Message: "payment screenshot exceeds the size limit",
	}
	ErrNotApproved = &DomainError{
		Code:    "NOT_APPROVED",
		Message: "credentials can only be issued for approved leads",
	}
	ErrDuplicateUsername = &DomainError{
		Code:    "DUPLICATE_USERNAME",
		Message: "username is already taken",
	}
	ErrEmptyDescriptionRequest = &DomainError{
		Code:    "EMPTY_DESCRIPTION_REQUEST",
		Message: "requested description must not be empty",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid username or password",
	}
)
