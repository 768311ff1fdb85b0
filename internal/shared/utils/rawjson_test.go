package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawJSONHelpers(t *testing.T) {
	tests := []struct {
		raw          string
		absent       bool
		document     bool
		objectOrText bool
	}{
		{raw: "", absent: true},
		{raw: "null", absent: true},
		{raw: "  null ", absent: true},
		{raw: `{"a":1}`, document: true, objectOrText: true},
		{raw: `[1,2]`, document: true},
		{raw: `"{\"a\":1}"`, objectOrText: true},
		{raw: `5`},
		{raw: `true`},
		{raw: `{"a":`, objectOrText: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			raw := json.RawMessage(tt.raw)
			assert.Equal(t, tt.absent, IsAbsentJSON(raw))
			assert.Equal(t, tt.document, IsJSONDocument(raw))
			assert.Equal(t, tt.objectOrText, IsJSONObjectOrString(raw))
		})
	}
}
