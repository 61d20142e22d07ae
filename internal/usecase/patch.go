package usecase

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Nullable is a patch field that tells a missing key apart from an explicit null.
// Set is false when the key was absent; Value is nil when the key was null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf returns a set field holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a set field that clears the stored value.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON is only called for keys present in the payload.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil

		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "failed to decode field")
	}
	n.Value = &v

	return nil
}

// Apply writes the field onto dst when it was set.
func (n Nullable[T]) Apply(dst **T) {
	if n.Set {
		*dst = n.Value
	}
}
