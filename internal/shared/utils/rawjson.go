package utils

import (
	"bytes"
	"encoding/json"
)

// IsAbsentJSON reports whether a raw field was left out or sent as null.
// Sparse patches treat both as "not supplied".
func IsAbsentJSON(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

// IsJSONDocument reports whether raw is a valid JSON object or array.
// Scalars and null are rejected.
func IsJSONDocument(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 || (b[0] != '{' && b[0] != '[') {
		return false
	}
	return json.Valid(b)
}

// IsJSONObjectOrString reports whether raw starts like an object or a
// JSON string holding one. Null and other scalars are rejected.
func IsJSONObjectOrString(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && (b[0] == '{' || b[0] == '"')
}
