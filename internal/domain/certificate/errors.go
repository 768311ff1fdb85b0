package certificate

import "errors"

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrCertificateExists   = errors.New("certificate id already exists")
	ErrIDRequired          = errors.New("certificate id is required")
	ErrUserRequired        = errors.New("user_id is required")
	ErrRecipientRequired   = errors.New("recipient_name is required")
	ErrProgramRequired     = errors.New("program_name is required")
	ErrGroupRequired       = errors.New("group_name is required")
	ErrIssueDateRequired   = errors.New("issue_date is required")
	ErrShareTokenRequired  = errors.New("share token is required")
	ErrInvalidOrientation  = errors.New("orientation must be landscape or portrait")
)
