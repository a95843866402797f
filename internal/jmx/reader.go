package jmx

import (
	"context"
	"fmt"
)

// Composite is a record-like attribute value addressable by named sub-keys.
type Composite map[string]interface{}

// ReadAttribute fetches the named attribute of a resource. If the value is
// composite and key is non-empty, the value of that sub-key is extracted;
// a missing sub-key fails with *AttributeKeyNotFoundError.
//
// If the value is not composite a supplied key is ignored and the raw
// value is returned as-is. This deliberately only branches on
// composite-ness; a key requested against a scalar value is not treated as
// contradictory input.
//
// The value is returned without coercion; display formatting is the
// caller's concern.
func ReadAttribute(ctx context.Context, s *Session, name ObjectName, attribute, key string) (interface{}, error) {
	value, err := s.ReadAttribute(ctx, name, attribute)
	if err != nil {
		return nil, fmt.Errorf("reading attribute [%s] of [%s]: %w", attribute, name, err)
	}

	composite, ok := value.(Composite)
	if !ok || key == "" {
		return value, nil
	}

	field, ok := composite[key]
	if !ok {
		return nil, &AttributeKeyNotFoundError{Attribute: attribute, Key: key}
	}
	return field, nil
}
