package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/serena-hb/jiractx/pkg/jira"
	"github.com/serena-hb/jiractx/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ticketsFields   []string
	ticketsPageSize int
	noProgress      bool
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets [\"<JQL>\"]",
	Short: "Fetch all tickets matching a JQL query",
	Long: `Fetch every ticket matching a JQL query, following pagination until
the full result set has been retrieved. The query comes from the
argument, the JIRA_JQL environment variable, or the config file.

Examples:
  jiractx tickets "project = PROJ AND status = Open"
  jiractx tickets "assignee = currentUser() ORDER BY created DESC" --fields summary,status
  jiractx tickets --json > tickets.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTickets,
}

func init() {
	rootCmd.AddCommand(ticketsCmd)
	ticketsCmd.Flags().StringSliceVar(&ticketsFields, "fields", nil, "comma-separated list of fields to fetch (default from config)")
	ticketsCmd.Flags().IntVar(&ticketsPageSize, "page-size", 0, "number of tickets per request (default from config)")
	ticketsCmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable progress bar")
}

func runTickets(cmd *cobra.Command, args []string) error {
	jql := cfg.JQL
	if len(args) > 0 {
		jql = args[0]
	}
	if jql == "" {
		return fmt.Errorf("no JQL query given: pass one as an argument or set JIRA_JQL")
	}

	fields := cfg.Fields
	if len(ticketsFields) > 0 {
		fields = ticketsFields
	}

	pageSize := cfg.PageSize
	if ticketsPageSize > 0 {
		pageSize = ticketsPageSize
	}

	logrus.WithFields(logrus.Fields{"jql": jql, "pageSize": pageSize}).Debug("fetching tickets")

	searchService := jira.NewSearchService(jiraClient)

	var bar *progressbar.ProgressBar
	onPage := func(fetched, total int) {
		if noProgress || jsonOutput {
			return
		}
		if bar == nil && total > 0 {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Fetching tickets..."),
				progressbar.OptionSetWidth(15),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "█",
					SaucerPadding: "░",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)
		}
		if bar != nil {
			_ = bar.Set(fetched)
		}
	}

	issues, err := searchService.SearchAll(jql, fields, pageSize, onPage)
	if err != nil {
		return fmt.Errorf("ticket fetch failed: %w", err)
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	if jsonOutput {
		return outputJSON(issues)
	}

	return outputTicketsTable(issues)
}

// outputJSON writes any value as indented JSON on stdout
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// outputTicketsTable outputs tickets in human-readable format
func outputTicketsTable(issues []models.Issue) error {
	if len(issues) == 0 {
		fmt.Println("No tickets found")
		return nil
	}

	fmt.Printf("Found %d tickets:\n", len(issues))
	fmt.Println()

	fmt.Printf("%-12s %-15s %-10s %-50s %s\n", "KEY", "STATUS", "CREATED", "SUMMARY", "PARENT")
	fmt.Println("------------------------------------------------------------------------------------------------------")

	for _, issue := range issues {
		fmt.Println(formatTicketRow(issue))
	}

	return nil
}

// formatTicketRow renders one fixed-width table row for an issue
func formatTicketRow(issue models.Issue) string {
	summary := stringField(issue.Fields, "summary")
	status := nestedName(issue.Fields, "status")
	created := dateOf(stringField(issue.Fields, "created"))

	return fmt.Sprintf("%-12s %-15s %-10s %-50s %s",
		truncate(issue.Key, 12),
		truncate(status, 15),
		created,
		truncate(summary, 50),
		parentInfo(issue.Fields),
	)
}

// stringField extracts a string-valued field, tolerating nulls
func stringField(fields map[string]interface{}, name string) string {
	s, _ := fields[name].(string)
	return s
}

// nestedName extracts the "name" of an object-valued field like status or priority
func nestedName(fields map[string]interface{}, name string) string {
	obj, ok := fields[name].(map[string]interface{})
	if !ok {
		return ""
	}
	n, _ := obj["name"].(string)
	return n
}

// dateOf reduces a Jira timestamp to its date part
func dateOf(created string) string {
	if len(created) >= 10 {
		return created[:10]
	}
	return created
}

// parentInfo renders "[KEY] summary" for the parent field, or "-" when absent
func parentInfo(fields map[string]interface{}) string {
	parent, ok := fields["parent"].(map[string]interface{})
	if !ok {
		return "-"
	}

	key, _ := parent["key"].(string)
	summary := ""
	if pf, ok := parent["fields"].(map[string]interface{}); ok {
		summary, _ = pf["summary"].(string)
	}

	if key == "" {
		return "-"
	}
	if summary == "" {
		return fmt.Sprintf("[%s]", key)
	}
	return fmt.Sprintf("[%s] %s", key, truncate(summary, 30))
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
