package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/serena-hb/jiractx/pkg/jira"
	"github.com/serena-hb/jiractx/pkg/models"
	"github.com/spf13/cobra"
)

// fieldsCmd represents the fields command
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List all Jira fields",
	Long: `List all available Jira fields including standard and custom fields.
Useful for finding the field names and custom field IDs to pass to
'jiractx tickets --fields'.`,
	Example: `  # List all fields
  jiractx fields

  # Output as JSON
  jiractx fields --json`,
	Args: cobra.NoArgs,
	RunE: runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

// runFields handles the fields command
func runFields(cmd *cobra.Command, args []string) error {
	fieldService := jira.NewFieldService(jiraClient)

	fields, err := fieldService.ListFields()
	if err != nil {
		return fmt.Errorf("failed to list fields: %w", err)
	}

	if jsonOutput {
		return outputJSON(fields)
	}

	return outputFieldsTable(fields)
}

// outputFieldsTable outputs fields in a human-readable table format
func outputFieldsTable(fields []models.Field) error {
	// Separate standard and custom fields
	var standardFields []models.Field
	var customFields []models.Field

	for _, field := range fields {
		if field.Custom {
			customFields = append(customFields, field)
		} else {
			standardFields = append(standardFields, field)
		}
	}

	sort.Slice(standardFields, func(i, j int) bool {
		return standardFields[i].Name < standardFields[j].Name
	})
	sort.Slice(customFields, func(i, j int) bool {
		return customFields[i].Name < customFields[j].Name
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if len(standardFields) > 0 {
		fmt.Fprintln(w, "Standard Fields:")
		fmt.Fprintln(w, "ID\tNAME\tTYPE")
		fmt.Fprintln(w, strings.Repeat("-", 80))

		for _, field := range standardFields {
			fmt.Fprintf(w, "%s\t%s\t%s\n", field.ID, field.Name, fieldType(field))
		}
		w.Flush()
		fmt.Println()
	}

	if len(customFields) > 0 {
		fmt.Fprintln(w, "Custom Fields:")
		fmt.Fprintln(w, "ID\tNAME\tTYPE")
		fmt.Fprintln(w, strings.Repeat("-", 80))

		for _, field := range customFields {
			fmt.Fprintf(w, "%s\t%s\t%s\n", field.ID, field.Name, fieldType(field))
		}
		w.Flush()
	}

	fmt.Printf("\nTotal: %d fields (%d standard, %d custom)\n",
		len(fields), len(standardFields), len(customFields))

	return nil
}

// fieldType renders a short type label for a field
func fieldType(field models.Field) string {
	if field.Custom && field.Schema.Custom != "" {
		// The custom type URI ends with the readable part
		parts := strings.Split(field.Schema.Custom, ":")
		return parts[len(parts)-1]
	}
	if field.Schema.System != "" {
		return field.Schema.System
	}
	return field.Schema.Type
}
