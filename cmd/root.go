package cmd

import (
	"errors"
	"fmt"
	"os"

	"checkjmx/internal/config"
	"checkjmx/internal/jmx"
	"checkjmx/internal/jolokia"
	"checkjmx/internal/probe"
	"checkjmx/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// The usage/probe distinction lets monitoring supervisors tell
// configuration mistakes from genuine alert conditions.
const (
	// ExitCodeSuccess indicates successful execution (including help).
	ExitCodeSuccess = 0
	// ExitCodeError indicates a classified probe failure.
	ExitCodeError = 1
	// ExitCodeUsage indicates the CLI was misused (required arguments
	// missing); no network activity has taken place.
	ExitCodeUsage = 2
)

var (
	rootURL          string
	rootObjectName   string
	rootAttribute    string
	rootAttributeKey string
	rootOperation    string
	rootUsername     string
	rootPassword     string
	rootUnits        string
	rootVerbose      bool
	rootConfigPath   string
)

// rootCmd is the probe itself. checkjmx is a single-purpose tool, so the
// probe runs on the bare command and subcommands cover the extras.
var rootCmd = &cobra.Command{
	Use:   "checkjmx -U <service_url> -O <object_name> -A <attribute_name>",
	Short: "Probe an attribute of a remote managed object",
	Long: `checkjmx connects to a remote managed object server, reads one
attribute of a named object, and prints the value together with an exit
code suitable for monitoring supervisors.

Options are:

-U  Service URL of the management endpoint, for example
    "http://<host>:<port>/jolokia"

-O  Object name to be checked, for example "java.lang:type=Memory".
    Patterns (domain wildcards or a trailing ",*") are resolved against
    the server and must match exactly one object.

-A  Attribute name

-K  Attribute key; use when the attribute is a composite

-o  Operation to invoke on the object after querying the value. Useful to
    reset any statistics or counter.

-u  Units label (accepted for compatibility, not rendered)

--username
    Username, if access is restricted; for example "monitorRole"

--password
    Password

On success the output is a single line:

    <attribute_name>[.<attribute_key>] = <value>`,
	// SilenceUsage prevents cobra from printing the usage message on
	// errors that are handled by the application.
	SilenceUsage: true,
	RunE:         runProbe,
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the build version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application. It runs the
// root command and maps any returned error onto the exit-code contract.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "checkjmx version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the exit code for an error. Usage errors keep
// their own code so supervisors can distinguish caller mistakes from
// remote probe failures.
func getExitCode(err error) int {
	var usageErr *probe.UsageError
	if errors.As(err, &usageErr) {
		return ExitCodeUsage
	}
	return ExitCodeError
}

func init() {
	// Connection flags are persistent so subcommands (list) share them.
	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&rootURL, "url", "U", "", "service URL of the management endpoint")
	persistent.StringVar(&rootUsername, "username", "", "username for restricted endpoints")
	persistent.StringVar(&rootPassword, "password", "", "password for restricted endpoints")
	persistent.BoolVarP(&rootVerbose, "verbose", "v", false, "verbose logging on stderr")
	persistent.StringVar(&rootConfigPath, "config", "", "config file (default is ~/.config/checkjmx/config.yaml)")

	flags := rootCmd.Flags()
	flags.StringVarP(&rootObjectName, "object", "O", "", "object name, exact or pattern")
	flags.StringVarP(&rootAttribute, "attribute", "A", "", "attribute name to read")
	flags.StringVarP(&rootAttributeKey, "key", "K", "", "sub-key of a composite attribute value")
	flags.StringVarP(&rootOperation, "operation", "o", "", "operation to invoke after the read")
	flags.StringVarP(&rootUnits, "units", "u", "", "units label (accepted, not rendered)")

	rootCmd.AddCommand(newVersionCmd())
}

// initLogging wires -v to the log level. Logs always go to stderr so the
// result line on stdout stays machine-parseable.
func initLogging(verbose bool) {
	level := logging.LevelWarn
	if verbose {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)
}

// loadConfig loads file and environment defaults for a command.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(rootConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// buildRequest merges flags over configured defaults into a probe request.
// Flags win; the config file and CHECKJMX_* environment variables only
// fill fields left empty on the command line.
func buildRequest(cfg config.Config) probe.Request {
	req := probe.Request{
		URL:          rootURL,
		ObjectName:   rootObjectName,
		Attribute:    rootAttribute,
		AttributeKey: rootAttributeKey,
		Operation:    rootOperation,
		Username:     rootUsername,
		Password:     rootPassword,
		Units:        rootUnits,
	}
	if req.URL == "" {
		req.URL = cfg.URL
	}
	if req.Username == "" {
		req.Username = cfg.Username
	}
	if req.Password == "" {
		req.Password = cfg.Password
	}
	return req
}

func runProbe(cmd *cobra.Command, args []string) error {
	initLogging(rootVerbose)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manager := jmx.NewManager(jolokia.Dial(jolokia.Options{
		Timeout:        cfg.Timeout,
		LivenessPeriod: cfg.LivenessPeriod,
	}))

	result, err := probe.Run(cmd.Context(), manager, buildRequest(cfg))
	if err != nil {
		return err
	}

	// A null attribute value produces no output line, matching the classic
	// plugin. The exit code is still success.
	if line := result.Format(); line != "" {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
