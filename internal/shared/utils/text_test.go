package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  Bootcamp-2024 \n", "Bootcamp-2024"},
		{"strips tags", "<b>Bootcamp</b><script>alert(1)</script>", "Bootcamp"},
		{"keeps entities readable", "R&amp;D Team", "R&D Team"},
		{"composes to NFC", "Cafe\u0301", "Caf\u00e9"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeOptional(t *testing.T) {
	assert.Nil(t, NormalizeOptional(nil))

	blank := "   "
	assert.Nil(t, NormalizeOptional(&blank))

	v := " ada@example.com "
	got := NormalizeOptional(&v)
	if assert.NotNil(t, got) {
		assert.Equal(t, "ada@example.com", *got)
	}
}

func TestValidateStruct(t *testing.T) {
	type input struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"omitempty,email"`
		Role  string `json:"role" validate:"omitempty,oneof=user admin"`
	}

	assert.NoError(t, ValidateStruct(input{Name: "n", Role: "admin"}))

	err := ValidateStruct(input{Email: "nope", Role: "root"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "email must be a valid email address")
		assert.Contains(t, err.Error(), "role must be one of [user admin]")
	}
}
