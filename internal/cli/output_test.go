package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"checkjmx/internal/jmx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"table", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(format))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func testNames(t *testing.T) []jmx.ObjectName {
	t.Helper()
	var names []jmx.ObjectName
	for _, s := range []string{
		"java.lang:type=Memory",
		"app:type=Cache,name=users",
	} {
		on, err := jmx.ParseObjectName(s)
		require.NoError(t, err)
		names = append(names, on)
	}
	return names
}

func TestRenderObjectNames_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderObjectNames(&buf, testNames(t), OutputFormatJSON))

	var decoded []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	// Output is sorted by canonical form.
	assert.Equal(t, []string{"app:name=users,type=Cache", "java.lang:type=Memory"}, decoded)
}

func TestRenderObjectNames_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderObjectNames(&buf, testNames(t), OutputFormatYAML))

	var decoded []string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
}

func TestRenderObjectNames_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderObjectNames(&buf, testNames(t), OutputFormatTable))

	out := buf.String()
	assert.Contains(t, out, "DOMAIN")
	assert.Contains(t, out, "java.lang")
	assert.Contains(t, out, "name=users,type=Cache")
}

func TestRenderObjectNames_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderObjectNames(&buf, nil, OutputFormatTable))
	assert.Contains(t, buf.String(), "No matching objects found")
}
