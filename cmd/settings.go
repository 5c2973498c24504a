package cmd

import (
	"fmt"

	"github.com/serena-hb/jiractx/pkg/jira"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var settingsProject string

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Export a project's custom fields and status lists",
	Long: `Export a project's context as JSON: the mapping of custom-field IDs
to names, and the valid workflow statuses for each issue type. The
project key comes from --project, the JIRA_PROJECT_KEY environment
variable, or the config file.

Examples:
  jiractx settings --project PROJ
  JIRA_PROJECT_KEY=PROJ jiractx settings > project-context.json`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().StringVarP(&settingsProject, "project", "p", "", "project key to export settings for")
}

func runSettings(cmd *cobra.Command, args []string) error {
	projectKey := cfg.Project
	if settingsProject != "" {
		projectKey = settingsProject
	}
	if projectKey == "" {
		return fmt.Errorf("no project key given: pass --project or set JIRA_PROJECT_KEY")
	}

	logrus.WithField("project", projectKey).Debug("exporting project settings")

	fieldService := jira.NewFieldService(jiraClient)
	projectService := jira.NewProjectService(jiraClient)

	export, err := jira.ProjectContext(fieldService, projectService, projectKey)
	if err != nil {
		return fmt.Errorf("settings export failed: %w", err)
	}

	// Always JSON: this output exists to be consumed by other tools
	return outputJSON(export)
}
