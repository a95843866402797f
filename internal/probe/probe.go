// Package probe orchestrates one request/response cycle of the checkjmx
// pipeline: connect, resolve, read, optionally invoke, close. The pipeline
// is strictly sequential with no retries; the session is released on every
// exit path, and exactly one classified error is surfaced per cycle.
package probe

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"checkjmx/internal/jmx"
	"checkjmx/pkg/logging"
)

// Request is the fully validated input to one probe cycle. It is not
// mutated once Run starts.
type Request struct {
	// URL is the service URL of the management endpoint.
	URL string
	// ObjectName identifies the resource, exact or as a pattern.
	ObjectName string
	// Attribute is the attribute to read.
	Attribute string
	// AttributeKey extracts a sub-key when the attribute value is
	// composite. Optional.
	AttributeKey string
	// Operation, when set, is invoked on the resource after the read.
	Operation string
	// Username and Password are passed as authentication material only
	// when both are set.
	Username string
	Password string
	// Units is a display label carried for compatibility with the classic
	// plugin flag set. It is accepted but not rendered.
	Units string
}

// UsageError indicates that required request fields are absent. It is
// raised before any network activity and maps to a distinct exit code so
// supervisors can tell configuration mistakes from probe failures.
type UsageError struct {
	// Missing lists the absent required fields.
	Missing []string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("missing required arguments: %s", strings.Join(e.Missing, ", "))
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

// MalformedURLError indicates a service URL that fails to parse.
type MalformedURLError struct {
	// URL is the service URL string.
	URL string
	// Reason is the underlying parse error, if any.
	Reason error
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed service URL [%s]", e.URL)
}

func (e *MalformedURLError) Unwrap() error { return e.Reason }

func (e *MalformedURLError) Is(target error) bool {
	_, ok := target.(*MalformedURLError)
	return ok
}

// Validate checks that the request carries the three required fields.
func (r *Request) Validate() error {
	var missing []string
	if r.URL == "" {
		missing = append(missing, "url")
	}
	if r.ObjectName == "" {
		missing = append(missing, "objectName")
	}
	if r.Attribute == "" {
		missing = append(missing, "attributeName")
	}
	if len(missing) > 0 {
		return &UsageError{Missing: missing}
	}
	return nil
}

// credentials returns the authentication material, or nil unless both
// username and password are present.
func (r *Request) credentials() *jmx.Credentials {
	if r.Username == "" || r.Password == "" {
		return nil
	}
	return &jmx.Credentials{Username: r.Username, Password: r.Password}
}

// Result is a successful probe outcome ready for display.
type Result struct {
	// Attribute is the attribute that was read.
	Attribute string
	// AttributeKey is the extracted sub-key, if one was requested.
	AttributeKey string
	// Value is the attribute value, uncoerced.
	Value interface{}
}

// Label returns "attribute" or "attribute.key".
func (r *Result) Label() string {
	if r.AttributeKey != "" {
		return r.Attribute + "." + r.AttributeKey
	}
	return r.Attribute
}

// Format renders the single result line expected by monitoring
// supervisors: "<attributeName>[.<attributeKey>] = <value>". A null
// attribute value renders as an empty string; the probe stays silent
// rather than printing a bogus value.
func (r *Result) Format() string {
	if r.Value == nil {
		return ""
	}
	return fmt.Sprintf("%s = %v", r.Label(), r.Value)
}

// Run executes one probe cycle against the manager. The steps run
// strictly in sequence: validate, parse the service URL, open a session,
// resolve the object name, read the attribute, invoke the operation if one
// was requested, and close the session.
//
// The session is closed on every exit path once it has been opened. The
// first failure encountered in the pipeline is the one surfaced; a close
// failure is reported only when nothing failed earlier.
func Run(ctx context.Context, mgr *jmx.Manager, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(req.URL)
	if err != nil {
		return nil, &MalformedURLError{URL: req.URL, Reason: err}
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, &MalformedURLError{URL: req.URL}
	}

	session, err := mgr.Open(ctx, endpoint, req.credentials())
	if err != nil {
		// No session was opened, so there is nothing to release.
		return nil, err
	}

	var firstErr error
	var value interface{}

	name, err := jmx.Resolve(ctx, session, req.ObjectName)
	if err != nil {
		firstErr = err
	} else {
		value, err = jmx.ReadAttribute(ctx, session, name, req.Attribute, req.AttributeKey)
		if err != nil {
			firstErr = err
		} else if req.Operation != "" {
			// The invoke failure is captured but must not prevent the
			// close from running.
			if err := jmx.InvokeOperation(ctx, session, name, req.Operation); err != nil {
				firstErr = err
			}
		}
	}

	if err := mgr.Close(session); err != nil {
		if firstErr == nil {
			firstErr = err
		} else {
			logging.Warn("Probe", "error closing session after failure: %v", err)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return &Result{
		Attribute:    req.Attribute,
		AttributeKey: req.AttributeKey,
		Value:        value,
	}, nil
}
