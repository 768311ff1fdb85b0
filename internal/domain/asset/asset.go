package asset

import "time"

// Asset is an uploaded file kept inline. The byte length of content is the
// unit of storage accounting.
type Asset struct {
	id        string
	userID    *string
	name      string
	mimeType  string
	content   string
	createdAt time.Time
	updatedAt time.Time
}

func NewAsset(id string, userID *string, name, mimeType, content string) (*Asset, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	if userID != nil && *userID == "" {
		userID = nil
	}

	now := time.Now()
	return &Asset{
		id:        id,
		userID:    userID,
		name:      name,
		mimeType:  mimeType,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAsset(id string, userID *string, name, mimeType, content string, createdAt, updatedAt time.Time) *Asset {
	return &Asset{
		id:        id,
		userID:    userID,
		name:      name,
		mimeType:  mimeType,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Asset) ID() string           { return a.id }
func (a *Asset) UserID() *string      { return a.userID }
func (a *Asset) Name() string         { return a.name }
func (a *Asset) MimeType() string     { return a.mimeType }
func (a *Asset) Content() string      { return a.content }
func (a *Asset) CreatedAt() time.Time { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time { return a.updatedAt }

// SizeBytes is the length counted against the storage limit.
func (a *Asset) SizeBytes() int {
	return len(a.content)
}

func (a *Asset) IsAnonymous() bool {
	return a.userID == nil
}

func (a *Asset) OwnedBy(userID string) bool {
	return a.userID != nil && *a.userID == userID
}
