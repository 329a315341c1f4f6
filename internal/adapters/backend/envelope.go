package backend

import (
	"bytes"
	"encoding/json"
	"slices"
)

// DecodeList unwraps a collection from a bare array, one of the named fields, or data.
// Anything else yields an empty list.
// POST: Never returns nil
func DecodeList[T any](body []byte, fields ...string) []T {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []T{}
	}
	if body[0] == '[' {
		return decodeArray[T](body)
	}
	if body[0] != '{' {
		return []T{}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return []T{}
	}
	for _, f := range slices.Concat(fields, []string{"data"}) {
		raw := bytes.TrimSpace(obj[f])
		if len(raw) > 0 && raw[0] == '[' {
			return decodeArray[T](raw)
		}
	}
	return []T{}
}

func decodeArray[T any](raw []byte) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []T{}
	}
	return items
}

// DecodeOne unwraps a single record from one of the named fields, data, or the bare object.
// A missing or null record is ErrNotFound.
func DecodeOne[T any](body []byte, fields ...string) (T, error) {
	var zero T
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return zero, ErrNotFound
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return zero, ErrNotFound
	}
	for _, f := range slices.Concat(fields, []string{"data"}) {
		raw := bytes.TrimSpace(obj[f])
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return zero, ErrNotFound
		}
		return v, nil
	}
	if _, ok := obj["_id"]; ok {
		var v T
		if err := json.Unmarshal(body, &v); err == nil {
			return v, nil
		}
	}
	return zero, ErrNotFound
}
