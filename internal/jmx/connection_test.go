package jmx

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerOpen(t *testing.T) {
	ft := &fakeTransport{}
	m := NewManager(fakeDialer(ft, nil))

	s, err := m.Open(context.Background(), testEndpoint, nil)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, testEndpoint.String(), s.Endpoint())
}

func TestManagerOpen_DialFailure(t *testing.T) {
	dialErr := errors.New("connection refused")
	m := NewManager(fakeDialer(nil, dialErr))

	_, err := m.Open(context.Background(), testEndpoint, nil)
	require.Error(t, err)

	var connectErr *ConnectError
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, testEndpoint.String(), connectErr.Endpoint)
	assert.ErrorIs(t, err, dialErr)
}

func TestManagerClose_Idempotent(t *testing.T) {
	ft := &fakeTransport{}
	m := NewManager(fakeDialer(ft, nil))

	s, err := m.Open(context.Background(), testEndpoint, nil)
	require.NoError(t, err)

	require.NoError(t, m.Close(s))
	assert.Equal(t, 1, ft.closeCalls)

	// Closing again must be a no-op, not an error.
	require.NoError(t, m.Close(s))
	assert.Equal(t, 1, ft.closeCalls)
}

func TestManagerClose_UnknownSession(t *testing.T) {
	m := NewManager(fakeDialer(&fakeTransport{}, nil))

	assert.NoError(t, m.Close(nil))
	assert.NoError(t, m.Close(&Session{id: "never-opened", manager: m}))
}

func TestManagerClose_PropagatesFailure(t *testing.T) {
	ft := &fakeTransport{closeErr: errors.New("broken pipe")}
	m := NewManager(fakeDialer(ft, nil))

	s, err := m.Open(context.Background(), testEndpoint, nil)
	require.NoError(t, err)

	err = m.Close(s)
	require.Error(t, err)
	var closeErr *CloseError
	assert.True(t, errors.As(err, &closeErr))

	// The registry entry is gone even though closing failed; a retry is a
	// no-op rather than a second teardown of the same transport.
	assert.NoError(t, m.Close(s))
	assert.Equal(t, 1, ft.closeCalls)
}

func TestSession_UseAfterClose(t *testing.T) {
	ft := &fakeTransport{searchResult: []ObjectName{mustParse("d:type=Cache")}}
	m := NewManager(fakeDialer(ft, nil))

	s, err := m.Open(context.Background(), testEndpoint, nil)
	require.NoError(t, err)
	require.NoError(t, m.Close(s))

	_, err = s.Search(context.Background(), mustParse("d:*"))
	var commErr *CommunicationError
	assert.True(t, errors.As(err, &commErr))

	_, err = s.ReadAttribute(context.Background(), mustParse("d:type=Cache"), "Size")
	assert.True(t, errors.As(err, &commErr))

	err = s.Invoke(context.Background(), mustParse("d:type=Cache"), "reset")
	assert.True(t, errors.As(err, &commErr))
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	ft1 := &fakeTransport{}
	ft2 := &fakeTransport{}
	transports := []Transport{ft1, ft2}
	i := 0
	m := NewManager(func(ctx context.Context, _ *url.URL, _ *Credentials) (Transport, error) {
		t := transports[i]
		i++
		return t, nil
	})

	s1, err := m.Open(context.Background(), testEndpoint, nil)
	require.NoError(t, err)
	s2, err := m.Open(context.Background(), testEndpoint, nil)
	require.NoError(t, err)

	require.NoError(t, m.Close(s1))
	assert.Equal(t, 1, ft1.closeCalls)
	assert.Equal(t, 0, ft2.closeCalls)

	require.NoError(t, m.Close(s2))
	assert.Equal(t, 1, ft2.closeCalls)
}
