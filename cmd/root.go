package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/serena-hb/jiractx/pkg/client"
	"github.com/serena-hb/jiractx/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile    string
	jsonOutput bool
	verbose    bool
	noColor    bool

	// Global variables
	cfg        *config.Config
	jiraClient *client.Client
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jiractx",
	Short: "Export Jira tickets and project context",
	Long: `jiractx is a command-line tool for exporting data from Jira Cloud.
It fetches tickets matching a JQL query with full pagination, and
exports a project's custom fields and per-issue-type status lists.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if noColor {
			logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
		}

		// Commands that work without credentials
		switch cmd.Name() {
		case "configure", "version", "help":
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w\nSet JIRA_DOMAIN, JIRA_EMAIL and JIRA_API_TOKEN, or run 'jiractx configure'", err)
		}

		jiraClient = client.New(cfg)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Exit codes:
//   - 0: Success
//   - 1: Authentication failure
//   - 2: Validation error
//   - 3: API error
//   - 4: Configuration error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type
func getExitCode(err error) int {
	errMsg := err.Error()

	if containsAny(errMsg, []string{"authentication", "credentials", "unauthorized", "401"}) {
		return 1 // Auth failure
	}

	if containsAny(errMsg, []string{"validation", "invalid", "required", "400"}) {
		return 2 // Validation error
	}

	if containsAny(errMsg, []string{"API error", "500", "502", "503", "504"}) {
		return 3 // API error
	}

	if containsAny(errMsg, []string{"config", "configuration"}) {
		return 4 // Config error
	}

	return 1
}

// containsAny checks if the string contains any of the substrings
func containsAny(s string, substrs []string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jiractx/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
