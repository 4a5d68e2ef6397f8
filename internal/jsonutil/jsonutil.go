// Package jsonutil provides shared helpers for the flat JSON values kept in
// key-value storage.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeNumber decodes a single JSON number without going through float64,
// so "12.10" keeps its exact digits. Strings, nulls and objects are rejected.
func DecodeNumber(data []byte, context string) (json.Number, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("%s: %w", context, err)
	}
	if dec.More() {
		return "", fmt.Errorf("%s: trailing data", context)
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", fmt.Errorf("%s: expected number, got %T", context, v)
	}
	return n, nil
}

// EncodeNumber returns the JSON encoding of a number already formatted as a
// decimal string. The text is validated so a malformed value never reaches storage.
func EncodeNumber(text string) ([]byte, error) {
	b, err := json.Marshal(json.Number(text))
	if err != nil {
		return nil, fmt.Errorf("encode number %q: %w", text, err)
	}
	return b, nil
}
