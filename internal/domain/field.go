package domain

import (
	"bytes"
	"encoding/json"
)

// Field is a submitted text value. It records whether the key was sent at all
// and whether the JSON value was a string, so validation can reject
// `"filePath": 123` with a field message instead of a decode error.
type Field struct {
	Value    string
	Present  bool
	IsString bool
}

// Text builds a present string field.
func Text(s string) Field {
	return Field{Value: s, Present: true, IsString: true}
}

// Blank reports an absent, null or empty-string field.
func (f Field) Blank() bool {
	return !f.Present || (f.IsString && f.Value == "")
}

// Ptr returns nil for an absent field.
func (f Field) Ptr() *string {
	if !f.Present {
		return nil
	}
	v := f.Value
	return &v
}

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = Field{}
		return nil
	}
	if len(data) == 0 || data[0] != '"' {
		*f = Field{Value: string(data), Present: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = Text(s)
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Present {
		return []byte("null"), nil
	}
	if !f.IsString {
		return []byte(f.Value), nil
	}
	return json.Marshal(f.Value)
}
