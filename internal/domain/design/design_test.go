package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
)

func TestNewDesign(t *testing.T) {
	owner := "user-1"
	d, err := NewDesign("d-1", &owner, "Classic", []byte(`{"objects":[]}`), "", nil, false)
	require.NoError(t, err)

	assert.Equal(t, certificate.OrientationLandscape, d.Orientation())
	assert.True(t, d.OwnedBy("user-1"))
	assert.False(t, d.OwnedBy("user-2"))
}

func TestNewDesign_TemplateWithoutOwner(t *testing.T) {
	d, err := NewDesign("tpl-1", nil, "Shared", nil, certificate.OrientationPortrait, nil, true)
	require.NoError(t, err)
	assert.True(t, d.IsTemplate())
	assert.False(t, d.OwnedBy(""))
}

func TestNewDesign_Validation(t *testing.T) {
	owner := "user-1"
	_, err := NewDesign("", &owner, "x", nil, "", nil, false)
	assert.ErrorIs(t, err, ErrIDRequired)

	_, err = NewDesign("d", &owner, "", nil, "", nil, false)
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewDesign("d", nil, "x", nil, "", nil, false)
	assert.ErrorIs(t, err, ErrOwnerRequired)
}

func TestDesign_Rename(t *testing.T) {
	owner := "user-1"
	d, err := NewDesign("d", &owner, "Old", nil, "", nil, false)
	require.NoError(t, err)

	require.NoError(t, d.Rename("New"))
	assert.Equal(t, "New", d.Name())
	assert.ErrorIs(t, d.Rename(""), ErrNameRequired)
}
