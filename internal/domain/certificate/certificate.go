package certificate

import (
	"crypto/subtle"
	"time"
)

type Status string

const (
	StatusValid   Status = "valid"
	StatusRevoked Status = "revoked"
)

type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// ParseOrientation defaults to landscape for empty input.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case "", OrientationLandscape:
		return OrientationLandscape, nil
	case OrientationPortrait:
		return OrientationPortrait, nil
	}
	return "", ErrInvalidOrientation
}

// Certificate is issued to one recipient inside a training group. The share
// token grants read access to the full record without authentication.
type Certificate struct {
	id             string
	userID         string
	recipientName  string
	recipientEmail *string
	programName    string
	issueDate      time.Time
	designJSON     []byte
	orientation    Orientation
	previewImage   *string
	groupName      string
	status         Status
	shareToken     string
	createdAt      time.Time
	updatedAt      time.Time
}

// Issue describes a certificate to be created. Text fields are expected to
// be normalized already.
type Issue struct {
	ID             string
	UserID         string
	RecipientName  string
	RecipientEmail *string
	ProgramName    string
	IssueDate      time.Time
	DesignJSON     []byte
	Orientation    Orientation
	PreviewImage   *string
	GroupName      string
}

func NewCertificate(in Issue, shareToken string) (*Certificate, error) {
	switch {
	case in.ID == "":
		return nil, ErrIDRequired
	case in.UserID == "":
		return nil, ErrUserRequired
	case in.RecipientName == "":
		return nil, ErrRecipientRequired
	case in.ProgramName == "":
		return nil, ErrProgramRequired
	case in.GroupName == "":
		return nil, ErrGroupRequired
	case in.IssueDate.IsZero():
		return nil, ErrIssueDateRequired
	case shareToken == "":
		return nil, ErrShareTokenRequired
	}
	if in.Orientation == "" {
		in.Orientation = OrientationLandscape
	}

	now := time.Now()
	return &Certificate{
		id:             in.ID,
		userID:         in.UserID,
		recipientName:  in.RecipientName,
		recipientEmail: in.RecipientEmail,
		programName:    in.ProgramName,
		issueDate:      in.IssueDate,
		designJSON:     in.DesignJSON,
		orientation:    in.Orientation,
		previewImage:   in.PreviewImage,
		groupName:      in.GroupName,
		status:         StatusValid,
		shareToken:     shareToken,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructCertificate(in Issue, status Status, shareToken string, createdAt, updatedAt time.Time) *Certificate {
	return &Certificate{
		id:             in.ID,
		userID:         in.UserID,
		recipientName:  in.RecipientName,
		recipientEmail: in.RecipientEmail,
		programName:    in.ProgramName,
		issueDate:      in.IssueDate,
		designJSON:     in.DesignJSON,
		orientation:    in.Orientation,
		previewImage:   in.PreviewImage,
		groupName:      in.GroupName,
		status:         status,
		shareToken:     shareToken,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Certificate) ID() string               { return c.id }
func (c *Certificate) UserID() string           { return c.userID }
func (c *Certificate) RecipientName() string    { return c.recipientName }
func (c *Certificate) RecipientEmail() *string  { return c.recipientEmail }
func (c *Certificate) ProgramName() string      { return c.programName }
func (c *Certificate) IssueDate() time.Time     { return c.issueDate }
func (c *Certificate) DesignJSON() []byte       { return c.designJSON }
func (c *Certificate) Orientation() Orientation { return c.orientation }
func (c *Certificate) PreviewImage() *string    { return c.previewImage }
func (c *Certificate) GroupName() string        { return c.groupName }
func (c *Certificate) Status() Status           { return c.status }
func (c *Certificate) ShareToken() string       { return c.shareToken }
func (c *Certificate) CreatedAt() time.Time     { return c.createdAt }
func (c *Certificate) UpdatedAt() time.Time     { return c.updatedAt }

func (c *Certificate) IsRevoked() bool {
	return c.status == StatusRevoked
}

// Revoke is idempotent; a revoked certificate still verifies, with its
// status shown.
func (c *Certificate) Revoke() {
	if c.status == StatusRevoked {
		return
	}
	c.status = StatusRevoked
	c.updatedAt = time.Now()
}

// MatchesToken compares in constant time.
func (c *Certificate) MatchesToken(token string) bool {
	if token == "" || c.shareToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(c.shareToken)) == 1
}
