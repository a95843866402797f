package cmd

import (
	"fmt"
	"net/url"

	"checkjmx/internal/cli"
	"checkjmx/internal/jmx"
	"checkjmx/internal/jolokia"
	"checkjmx/internal/probe"
	"checkjmx/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	listOutputFormat string
	listQuiet        bool
)

// listCmd is a discovery aid: it searches the server for all objects
// matching a pattern, so a probe's -O value can be narrowed down until it
// matches exactly one object.
var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List objects matching a name pattern",
	Long: `List all managed objects on the server matching an object name
pattern. Without a pattern, every registered object is listed.

Examples:
  checkjmx list -U http://localhost:8778/jolokia
  checkjmx list -U http://localhost:8778/jolokia 'java.lang:*'
  checkjmx list -U http://localhost:8778/jolokia '*:type=Cache,*' --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listOutputFormat, "output", "table", "Output format (table, json, yaml)")
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Suppress the progress spinner")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	initLogging(rootVerbose)

	if err := cli.ValidateOutputFormat(listOutputFormat); err != nil {
		return err
	}

	pattern := "*:*"
	if len(args) == 1 {
		pattern = args[0]
	}
	objName, err := jmx.ParseObjectName(pattern)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	serviceURL := rootURL
	if serviceURL == "" {
		serviceURL = cfg.URL
	}
	if serviceURL == "" {
		return &probe.UsageError{Missing: []string{"url"}}
	}
	endpoint, err := url.Parse(serviceURL)
	if err != nil || endpoint.Scheme == "" || endpoint.Host == "" {
		return &probe.MalformedURLError{URL: serviceURL, Reason: err}
	}

	manager := jmx.NewManager(jolokia.Dial(jolokia.Options{
		Timeout:        cfg.Timeout,
		LivenessPeriod: cfg.LivenessPeriod,
	}))

	username := rootUsername
	if username == "" {
		username = cfg.Username
	}
	password := rootPassword
	if password == "" {
		password = cfg.Password
	}
	var creds *jmx.Credentials
	if username != "" && password != "" {
		creds = &jmx.Credentials{Username: username, Password: password}
	}

	ctx := cmd.Context()
	var names []jmx.ObjectName
	err = cli.WithSpinner(fmt.Sprintf("Searching %s", endpoint), listQuiet, func() error {
		session, err := manager.Open(ctx, endpoint, creds)
		if err != nil {
			return err
		}
		defer func() {
			if err := manager.Close(session); err != nil {
				logging.Warn("Connection", "error closing session: %v", err)
			}
		}()

		names, err = session.Search(ctx, objName)
		return err
	})
	if err != nil {
		return err
	}

	return cli.RenderObjectNames(cmd.OutOrStdout(), names, cli.OutputFormat(listOutputFormat))
}
