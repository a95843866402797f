// Package cli holds presentation helpers shared by the checkjmx commands:
// output format selection, table rendering for discovery output, and the
// progress spinner used by interactive commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"checkjmx/internal/jmx"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the supported output formats for list output.
type OutputFormat string

const (
	// OutputFormatTable formats output as a table
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON formats output as JSON
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML formats output as YAML
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidateOutputFormat validates that the given format string is a
// supported output format.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: table, json, yaml)", format)
	}
}

// RenderObjectNames writes the matched object names to out in the chosen
// format. Names are sorted by canonical form for stable output.
func RenderObjectNames(out io.Writer, names []jmx.ObjectName, format OutputFormat) error {
	canonical := make([]string, 0, len(names))
	for _, n := range names {
		canonical = append(canonical, n.Canonical())
	}
	sort.Strings(canonical)

	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(canonical, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case OutputFormatYAML:
		data, err := yaml.Marshal(canonical)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, string(data))
		return err

	default:
		if len(canonical) == 0 {
			_, err := fmt.Fprintln(out, "No matching objects found")
			return err
		}
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"DOMAIN", "PROPERTIES"})
		for _, name := range canonical {
			domain, props, _ := strings.Cut(name, ":")
			t.AppendRow(table.Row{domain, props})
		}
		t.Render()
		return nil
	}
}
