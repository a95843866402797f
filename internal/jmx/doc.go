// Package jmx implements the core probe pipeline against a remote managed
// object server: session lifecycle, object name resolution, attribute
// reading with composite-value extraction, and operation invocation.
//
// The package is protocol-agnostic. All remote communication goes through
// the Transport interface; the concrete wire protocol lives in a connector
// package (see internal/jolokia) and is handed to the Manager as a
// DialFunc. This keeps the decision logic of the probe testable without a
// live server.
//
// # Error Taxonomy
//
// Every failure mode in the pipeline maps to a distinct error type in this
// package (NotFoundError, AmbiguousNameError, AttributeNotFoundError,
// AttributeKeyNotFoundError, IntrospectionError, CommunicationError,
// InvokeError, ConnectError, CloseError, InvalidNameError). All types
// implement Unwrap so the underlying cause is retained for diagnostics,
// and Is so callers can classify with errors.Is/errors.As.
package jmx
