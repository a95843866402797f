package jmx

import (
	"fmt"
)

// ConnectError indicates a transport-level failure while opening a session.
type ConnectError struct {
	// Endpoint is the service URL that could not be reached.
	Endpoint string
	// Reason is the underlying error.
	Reason error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("error opening connection to [%s]: %v", e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ConnectError) Unwrap() error { return e.Reason }

// Is allows errors.Is() to work with wrapped errors.
func (e *ConnectError) Is(target error) bool {
	_, ok := target.(*ConnectError)
	return ok
}

// CloseError indicates a failure releasing a session.
type CloseError struct {
	// Reason is the underlying error.
	Reason error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("error closing connection: %v", e.Reason)
}

func (e *CloseError) Unwrap() error { return e.Reason }

func (e *CloseError) Is(target error) bool {
	_, ok := target.(*CloseError)
	return ok
}

// InvalidNameError indicates an object name string that fails to parse.
type InvalidNameError struct {
	// Name is the malformed object name string.
	Name string
	// Reason describes the parse failure.
	Reason error
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("malformed objectName [%s]: %v", e.Name, e.Reason)
}

func (e *InvalidNameError) Unwrap() error { return e.Reason }

func (e *InvalidNameError) Is(target error) bool {
	_, ok := target.(*InvalidNameError)
	return ok
}

// NotFoundError indicates that an object name matched no resource: either a
// pattern matched zero instances, or an exact name does not exist on the
// server.
type NotFoundError struct {
	// Name is the object name that was looked up.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("objectName not found [%s]", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// AmbiguousNameError indicates an object name pattern that matched more
// than one resource. Count carries the number of matches for diagnostics.
type AmbiguousNameError struct {
	// Name is the pattern that was resolved.
	Name string
	// Count is the number of matching resources.
	Count int
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("objectName not unique: pattern [%s] matches %d instances", e.Name, e.Count)
}

func (e *AmbiguousNameError) Is(target error) bool {
	_, ok := target.(*AmbiguousNameError)
	return ok
}

// AttributeNotFoundError indicates that the named attribute does not exist
// on the resolved resource.
type AttributeNotFoundError struct {
	// Object is the canonical name of the resource.
	Object string
	// Attribute is the attribute that was requested.
	Attribute string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("attributeName not found [%s]", e.Attribute)
}

func (e *AttributeNotFoundError) Is(target error) bool {
	_, ok := target.(*AttributeNotFoundError)
	return ok
}

// AttributeKeyNotFoundError indicates a composite attribute value that
// lacks the requested sub-key.
type AttributeKeyNotFoundError struct {
	// Attribute is the composite attribute that was read.
	Attribute string
	// Key is the sub-key that is absent.
	Key string
}

func (e *AttributeKeyNotFoundError) Error() string {
	return fmt.Sprintf("attributeKey not found [%s]", e.Key)
}

func (e *AttributeKeyNotFoundError) Is(target error) bool {
	_, ok := target.(*AttributeKeyNotFoundError)
	return ok
}

// IntrospectionError indicates a reflection or introspection failure on the
// remote side while locating an attribute or operation.
type IntrospectionError struct {
	// Reason is the underlying error.
	Reason error
}

func (e *IntrospectionError) Error() string {
	return fmt.Sprintf("remote introspection failed: %v", e.Reason)
}

func (e *IntrospectionError) Unwrap() error { return e.Reason }

func (e *IntrospectionError) Is(target error) bool {
	_, ok := target.(*IntrospectionError)
	return ok
}

// CommunicationError indicates a generic I/O failure while talking to the
// server during query or invoke.
type CommunicationError struct {
	// Reason is the underlying error.
	Reason error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("error querying server: %v", e.Reason)
}

func (e *CommunicationError) Unwrap() error { return e.Reason }

func (e *CommunicationError) Is(target error) bool {
	_, ok := target.(*CommunicationError)
	return ok
}

// InvokeError indicates a failure invoking an operation on a resource. Any
// remote-side exception, reflection failure, or missing-instance condition
// during invocation is normalized into this type.
type InvokeError struct {
	// Operation is the operation name that was invoked.
	Operation string
	// Reason is the underlying error.
	Reason error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("error invoking operation [%s]: %v", e.Operation, e.Reason)
}

func (e *InvokeError) Unwrap() error { return e.Reason }

func (e *InvokeError) Is(target error) bool {
	_, ok := target.(*InvokeError)
	return ok
}
