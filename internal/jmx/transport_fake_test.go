package jmx

import (
	"context"
	"fmt"
	"net/url"
)

// fakeTransport implements Transport against in-memory fixtures so the
// pipeline can be tested without a server.
type fakeTransport struct {
	// searchResult is returned by Search unless searchErr is set.
	searchResult []ObjectName
	searchErr    error

	// attrs maps canonical object name -> attribute -> value.
	attrs   map[string]map[string]interface{}
	readErr error

	invokeErr error
	invoked   []string

	closeErr   error
	closeCalls int
}

func (f *fakeTransport) Search(ctx context.Context, pattern ObjectName) ([]ObjectName, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResult, nil
}

func (f *fakeTransport) ReadAttribute(ctx context.Context, name ObjectName, attribute string) (interface{}, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	object, ok := f.attrs[name.Canonical()]
	if !ok {
		return nil, &NotFoundError{Name: name.Canonical()}
	}
	value, ok := object[attribute]
	if !ok {
		return nil, &AttributeNotFoundError{Object: name.Canonical(), Attribute: attribute}
	}
	return value, nil
}

func (f *fakeTransport) Invoke(ctx context.Context, name ObjectName, operation string) error {
	if f.invokeErr != nil {
		return f.invokeErr
	}
	f.invoked = append(f.invoked, fmt.Sprintf("%s/%s", name.Canonical(), operation))
	return nil
}

func (f *fakeTransport) Close() error {
	f.closeCalls++
	return f.closeErr
}

// fakeDialer returns a DialFunc handing out the given transport.
func fakeDialer(t Transport, dialErr error) DialFunc {
	return func(ctx context.Context, endpoint *url.URL, creds *Credentials) (Transport, error) {
		if dialErr != nil {
			return nil, dialErr
		}
		return t, nil
	}
}

// mustParse parses an object name or fails the fixture setup.
func mustParse(name string) ObjectName {
	on, err := ParseObjectName(name)
	if err != nil {
		panic(err)
	}
	return on
}

var testEndpoint = &url.URL{Scheme: "http", Host: "localhost:8778", Path: "/jolokia"}
