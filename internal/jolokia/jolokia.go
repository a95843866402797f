// Package jolokia implements the jmx.Transport interface over the Jolokia
// JSON-over-HTTP protocol, the standard HTTP bridge to JMX agents. Each
// transport owns one http.Client and a background liveness checker that
// periodically issues a version request so a silently dropped connection
// surfaces as an error instead of a hang.
package jolokia

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"checkjmx/internal/jmx"
	"checkjmx/pkg/logging"
)

const (
	// DefaultTimeout bounds a single request round trip.
	DefaultTimeout = 15 * time.Second
	// DefaultLivenessPeriod matches the classic client connection check
	// period of 5000ms.
	DefaultLivenessPeriod = 5 * time.Second
)

// Options configures a dialed transport.
type Options struct {
	// Timeout bounds each HTTP round trip. Zero means DefaultTimeout.
	Timeout time.Duration
	// LivenessPeriod is the interval of the dead-connection check. Zero
	// means DefaultLivenessPeriod; a negative value disables the checker.
	LivenessPeriod time.Duration
}

// Dial returns a jmx.DialFunc that opens Jolokia transports with the given
// options. Dialing performs an initial version request, so an unreachable
// or unauthorized endpoint fails at connect time.
func Dial(opts Options) jmx.DialFunc {
	return func(ctx context.Context, endpoint *url.URL, creds *jmx.Credentials) (jmx.Transport, error) {
		if opts.Timeout == 0 {
			opts.Timeout = DefaultTimeout
		}
		if opts.LivenessPeriod == 0 {
			opts.LivenessPeriod = DefaultLivenessPeriod
		}

		t := &transport{
			endpoint: endpoint.String(),
			creds:    creds,
			client:   &http.Client{Timeout: opts.Timeout},
			stop:     make(chan struct{}),
			done:     make(chan struct{}),
		}

		// The handshake: prove the endpoint speaks Jolokia before the
		// session is handed out.
		if _, err := t.execute(ctx, request{Type: "version"}); err != nil {
			return nil, err
		}

		if opts.LivenessPeriod > 0 {
			go t.checkLiveness(opts.LivenessPeriod, opts.Timeout)
		} else {
			close(t.done)
		}
		return t, nil
	}
}

// request is the Jolokia POST body.
type request struct {
	Type      string        `json:"type"`
	MBean     string        `json:"mbean,omitempty"`
	Attribute string        `json:"attribute,omitempty"`
	Operation string        `json:"operation,omitempty"`
	Arguments []interface{} `json:"arguments,omitempty"`
}

// response is the Jolokia envelope. A non-200 status carries the remote
// exception class in ErrorType.
type response struct {
	Status    int             `json:"status"`
	Value     json.RawMessage `json:"value"`
	Error     string          `json:"error"`
	ErrorType string          `json:"error_type"`
}

type transport struct {
	endpoint string
	creds    *jmx.Credentials
	client   *http.Client

	broken atomic.Bool
	stop   chan struct{}
	done   chan struct{}
}

// Search implements jmx.Transport.
func (t *transport) Search(ctx context.Context, pattern jmx.ObjectName) ([]jmx.ObjectName, error) {
	raw, err := t.execute(ctx, request{Type: "search", MBean: pattern.Canonical()})
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, &jmx.CommunicationError{Reason: fmt.Errorf("decoding search result: %w", err)}
	}

	matches := make([]jmx.ObjectName, 0, len(names))
	for _, name := range names {
		on, err := jmx.ParseObjectName(name)
		if err != nil {
			return nil, &jmx.CommunicationError{Reason: fmt.Errorf("server returned unparseable objectName %q: %w", name, err)}
		}
		matches = append(matches, on)
	}
	return matches, nil
}

// ReadAttribute implements jmx.Transport. JSON object values are returned
// as jmx.Composite so the reader can extract sub-keys.
func (t *transport) ReadAttribute(ctx context.Context, name jmx.ObjectName, attribute string) (interface{}, error) {
	raw, err := t.execute(ctx, request{Type: "read", MBean: name.Canonical(), Attribute: attribute})
	if err != nil {
		return nil, err
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, &jmx.CommunicationError{Reason: fmt.Errorf("decoding attribute value: %w", err)}
	}
	if m, ok := value.(map[string]interface{}); ok {
		return jmx.Composite(m), nil
	}
	return value, nil
}

// Invoke implements jmx.Transport. The operation's return value is
// discarded.
func (t *transport) Invoke(ctx context.Context, name jmx.ObjectName, operation string) error {
	_, err := t.execute(ctx, request{Type: "exec", MBean: name.Canonical(), Operation: operation})
	return err
}

// Close implements jmx.Transport. It stops the liveness checker and drops
// idle connections. Close does not fail; the Manager guarantees it runs at
// most once.
func (t *transport) Close() error {
	close(t.stop)
	<-t.done
	t.client.CloseIdleConnections()
	return nil
}

func (t *transport) execute(ctx context.Context, req request) (json.RawMessage, error) {
	if t.broken.Load() {
		return nil, &jmx.CommunicationError{Reason: errors.New("connection failed liveness check")}
	}
	return t.do(ctx, req)
}

// do performs one round trip without consulting the broken mark.
func (t *transport) do(ctx context.Context, req request) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &jmx.CommunicationError{Reason: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &jmx.CommunicationError{Reason: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if t.creds != nil {
		httpReq.SetBasicAuth(t.creds.Username, t.creds.Password)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &jmx.CommunicationError{Reason: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, &jmx.CommunicationError{Reason: fmt.Errorf("endpoint returned HTTP %d", httpResp.StatusCode)}
	}

	var resp response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, &jmx.CommunicationError{Reason: fmt.Errorf("decoding response: %w", err)}
	}
	if resp.Status != http.StatusOK {
		return nil, mapRemoteError(req, resp)
	}
	return resp.Value, nil
}

// mapRemoteError translates the Jolokia error envelope onto the pipeline
// error taxonomy using the remote exception class.
func mapRemoteError(req request, resp response) error {
	cause := resp.Error
	if cause == "" {
		cause = fmt.Sprintf("remote status %d", resp.Status)
	}

	switch {
	case strings.Contains(resp.ErrorType, "InstanceNotFoundException"):
		return &jmx.NotFoundError{Name: req.MBean}
	case strings.Contains(resp.ErrorType, "AttributeNotFoundException"):
		return &jmx.AttributeNotFoundError{Object: req.MBean, Attribute: req.Attribute}
	case strings.Contains(resp.ErrorType, "IntrospectionException"),
		strings.Contains(resp.ErrorType, "ReflectionException"):
		return &jmx.IntrospectionError{Reason: errors.New(cause)}
	default:
		return &jmx.CommunicationError{Reason: errors.New(cause)}
	}
}

// checkLiveness periodically issues a version request. A failed check
// marks the transport broken so the next call fails fast instead of
// hanging on a dead connection; a later successful check clears the mark.
func (t *transport) checkLiveness(period, timeout time.Duration) {
	defer close(t.done)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			_, err := t.do(ctx, request{Type: "version"})
			cancel()
			if err != nil {
				if !t.broken.Swap(true) {
					logging.Warn("Liveness", "dead-connection check failed for %s: %v", t.endpoint, err)
				}
			} else {
				t.broken.Store(false)
			}
		}
	}
}
