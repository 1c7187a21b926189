package models

import (
	"bytes"
	"strconv"
)

// FlexibleID is an opaque backend identifier. The scheduling api emits ids as
// numbers on some resources and strings on others, so both are accepted.
type FlexibleID string

func (id FlexibleID) String() string {
	return string(id)
}

func (id FlexibleID) IsZero() bool {
	return id == ""
}

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return err
	}
	*id = FlexibleID(data)
	return nil
}

// MarshalJSON writes integer-looking ids back as numbers so the backend gets
// the same shape it sent.
func (id FlexibleID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return []byte(strconv.Quote(string(id))), nil
}
