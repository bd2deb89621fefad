package models

import (
	"database/sql/driver"
	"encoding/json"
)

// TagList is an ordered list of free-text tags stored as a JSON-encoded text
// column. A NULL or malformed stored value decodes to an empty list.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TagList) Scan(value interface{}) error {
	*t = TagList{}
	raw, ok := rawBytes(value)
	if !ok {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil || tags == nil {
		return nil
	}
	*t = tags
	return nil
}

// IDList is an ordered list of category ids stored the same way as TagList.
type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	b, err := json.Marshal([]uint(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IDList) Scan(value interface{}) error {
	*l = IDList{}
	raw, ok := rawBytes(value)
	if !ok {
		return nil
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil || ids == nil {
		return nil
	}
	*l = ids
	return nil
}

func rawBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
