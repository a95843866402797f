package jmx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAttribute_Scalar(t *testing.T) {
	ft := &fakeTransport{attrs: map[string]map[string]interface{}{
		"domain:type=Cache": {"HitRatio": 0.97},
	}}
	_, s := openSession(t, ft)

	value, err := ReadAttribute(context.Background(), s, mustParse("domain:type=Cache"), "HitRatio", "")
	require.NoError(t, err)
	assert.Equal(t, 0.97, value)
}

func TestReadAttribute_CompositeExtraction(t *testing.T) {
	ft := &fakeTransport{attrs: map[string]map[string]interface{}{
		"java.lang:type=Memory": {"HeapMemoryUsage": Composite{"used": 42, "max": 100}},
	}}
	_, s := openSession(t, ft)

	value, err := ReadAttribute(context.Background(), s, mustParse("java.lang:type=Memory"), "HeapMemoryUsage", "used")
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestReadAttribute_CompositeWithoutKey(t *testing.T) {
	composite := Composite{"used": 42, "max": 100}
	ft := &fakeTransport{attrs: map[string]map[string]interface{}{
		"java.lang:type=Memory": {"HeapMemoryUsage": composite},
	}}
	_, s := openSession(t, ft)

	value, err := ReadAttribute(context.Background(), s, mustParse("java.lang:type=Memory"), "HeapMemoryUsage", "")
	require.NoError(t, err)
	assert.Equal(t, composite, value)
}

func TestReadAttribute_CompositeKeyMissing(t *testing.T) {
	ft := &fakeTransport{attrs: map[string]map[string]interface{}{
		"java.lang:type=Memory": {"HeapMemoryUsage": Composite{"used": 42, "max": 100}},
	}}
	_, s := openSession(t, ft)

	_, err := ReadAttribute(context.Background(), s, mustParse("java.lang:type=Memory"), "HeapMemoryUsage", "missing")
	require.Error(t, err)

	var keyErr *AttributeKeyNotFoundError
	require.True(t, errors.As(err, &keyErr))
	assert.Equal(t, "missing", keyErr.Key)
}

func TestReadAttribute_NonCompositePassthrough(t *testing.T) {
	// A requested key against a non-composite value is ignored, not
	// rejected.
	ft := &fakeTransport{attrs: map[string]map[string]interface{}{
		"domain:type=Counter": {"Count": 7},
	}}
	_, s := openSession(t, ft)

	value, err := ReadAttribute(context.Background(), s, mustParse("domain:type=Counter"), "Count", "x")
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestReadAttribute_ObjectMissing(t *testing.T) {
	ft := &fakeTransport{attrs: map[string]map[string]interface{}{}}
	_, s := openSession(t, ft)

	_, err := ReadAttribute(context.Background(), s, mustParse("domain:type=Gone"), "Value", "")
	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestReadAttribute_AttributeMissing(t *testing.T) {
	ft := &fakeTransport{attrs: map[string]map[string]interface{}{
		"domain:type=Cache": {"HitRatio": 0.97},
	}}
	_, s := openSession(t, ft)

	_, err := ReadAttribute(context.Background(), s, mustParse("domain:type=Cache"), "MissRatio", "")
	require.Error(t, err)

	var attrErr *AttributeNotFoundError
	require.True(t, errors.As(err, &attrErr))
	assert.Equal(t, "MissRatio", attrErr.Attribute)
}
