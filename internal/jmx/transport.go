package jmx

import (
	"context"
	"net/url"
)

// Credentials is the authentication material for a session. Both fields
// are required together; a connection with only one of them is attempted
// unauthenticated by the caller.
type Credentials struct {
	Username string
	Password string
}

// Transport is the wire-protocol seam of the probe. A Transport represents
// one open connection to a managed object server; the concrete protocol
// (see internal/jolokia) is injected into the Manager as a DialFunc.
//
// Transports classify remote failures into the error taxonomy of this
// package: resource lookups that miss return *NotFoundError, missing
// attributes return *AttributeNotFoundError, remote reflection failures
// return *IntrospectionError, and transport-level I/O failures return
// *CommunicationError.
type Transport interface {
	// Search returns the names of all resources matching the pattern.
	Search(ctx context.Context, pattern ObjectName) ([]ObjectName, error)

	// ReadAttribute fetches the named attribute of a resource. Composite
	// (record-like) values are returned as Composite.
	ReadAttribute(ctx context.Context, name ObjectName, attribute string) (interface{}, error)

	// Invoke calls the named no-argument operation on a resource. The
	// operation's return value, if any, is discarded.
	Invoke(ctx context.Context, name ObjectName, operation string) error

	// Close releases the underlying connection. Close is called at most
	// once per Transport.
	Close() error
}

// DialFunc opens a Transport to an endpoint. Credentials may be nil for
// unauthenticated connections.
type DialFunc func(ctx context.Context, endpoint *url.URL, creds *Credentials) (Transport, error)
