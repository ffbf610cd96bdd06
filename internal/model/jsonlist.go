package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is stored as JSON text, e.g. quiz answer options.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// UintList is stored as JSON text, e.g. completed video ids.
type UintList []uint

func (l UintList) Value() (driver.Value, error) {
	if l == nil {
		l = UintList{}
	}
	return json.Marshal(l)
}

func (l *UintList) Scan(value interface{}) error {
	if value == nil {
		*l = UintList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for UintList")
	}
}
