package design

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
)

// Design is a certificate layout. Templates are shared, have no owner and
// do not count against plan limits.
type Design struct {
	id           string
	userID       *string
	name         string
	designJSON   []byte
	orientation  certificate.Orientation
	previewImage *string
	isTemplate   bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewDesign(id string, userID *string, name string, designJSON []byte,
	orientation certificate.Orientation, previewImage *string, isTemplate bool) (*Design, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if !isTemplate && (userID == nil || *userID == "") {
		return nil, ErrOwnerRequired
	}
	if orientation == "" {
		orientation = certificate.OrientationLandscape
	}

	now := time.Now()
	return &Design{
		id:           id,
		userID:       userID,
		name:         name,
		designJSON:   designJSON,
		orientation:  orientation,
		previewImage: previewImage,
		isTemplate:   isTemplate,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructDesign(id string, userID *string, name string, designJSON []byte,
	orientation certificate.Orientation, previewImage *string, isTemplate bool,
	createdAt, updatedAt time.Time) *Design {
	return &Design{
		id:           id,
		userID:       userID,
		name:         name,
		designJSON:   designJSON,
		orientation:  orientation,
		previewImage: previewImage,
		isTemplate:   isTemplate,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (d *Design) ID() string                           { return d.id }
func (d *Design) UserID() *string                      { return d.userID }
func (d *Design) Name() string                         { return d.name }
func (d *Design) DesignJSON() []byte                   { return d.designJSON }
func (d *Design) Orientation() certificate.Orientation { return d.orientation }
func (d *Design) PreviewImage() *string                { return d.previewImage }
func (d *Design) IsTemplate() bool                     { return d.isTemplate }
func (d *Design) CreatedAt() time.Time                 { return d.createdAt }
func (d *Design) UpdatedAt() time.Time                 { return d.updatedAt }

// OwnedBy reports whether userID owns the design. Templates are owned by
// nobody.
func (d *Design) OwnedBy(userID string) bool {
	return d.userID != nil && *d.userID == userID
}

func (d *Design) Rename(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	d.name = name
	d.touch()
	return nil
}

func (d *Design) SetContent(designJSON []byte) {
	d.designJSON = designJSON
	d.touch()
}

func (d *Design) SetOrientation(o certificate.Orientation) {
	d.orientation = o
	d.touch()
}

func (d *Design) SetPreviewImage(img *string) {
	d.previewImage = img
	d.touch()
}

func (d *Design) touch() {
	d.updatedAt = time.Now()
}
