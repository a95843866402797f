package jmx

import (
	"context"
	"fmt"

	"checkjmx/pkg/logging"
)

// Resolve turns an object name string into exactly one concrete
// ObjectName against a live session.
//
// Exact names pass through unverified; their existence is checked lazily
// by the subsequent attribute read or invoke. Patterns are searched on the
// server: zero matches fail with *NotFoundError, more than one with
// *AmbiguousNameError carrying the match count. Resolution is a single
// round trip; there are no retries.
func Resolve(ctx context.Context, s *Session, name string) (ObjectName, error) {
	objName, err := ParseObjectName(name)
	if err != nil {
		return ObjectName{}, err
	}
	if !objName.IsPattern() {
		return objName, nil
	}

	matches, err := s.Search(ctx, objName)
	if err != nil {
		return ObjectName{}, fmt.Errorf("resolving objectName [%s]: %w", name, err)
	}
	logging.Debug("Resolver", "pattern %s matched %d instances", objName, len(matches))

	switch len(matches) {
	case 0:
		return ObjectName{}, &NotFoundError{Name: name}
	case 1:
		return matches[0], nil
	default:
		return ObjectName{}, &AmbiguousNameError{Name: name, Count: len(matches)}
	}
}
