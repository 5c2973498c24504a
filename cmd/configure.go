package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/serena-hb/jiractx/pkg/client"
	"github.com/serena-hb/jiractx/pkg/config"
	"github.com/spf13/cobra"
)

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure jiractx credentials and settings",
	Long: `Interactive setup wizard to configure your Jira Cloud credentials.
You will need:
- Your Jira domain (e.g., yourcompany.atlassian.net)
- Your email address
- An API token (create one at https://id.atlassian.com/manage/api-tokens)

Everything written here can also be supplied via the JIRA_DOMAIN,
JIRA_EMAIL, JIRA_API_TOKEN and JIRA_PROJECT_KEY environment variables,
which take precedence over the config file.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== jiractx Configuration ===")
	fmt.Println()

	domain, err := prompt(reader, "Jira domain (e.g., yourcompany.atlassian.net): ")
	if err != nil {
		return err
	}
	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}

	email, err := prompt(reader, "Email address: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	fmt.Println("API token (create one at https://id.atlassian.com/manage/api-tokens):")
	apiToken, err := prompt(reader, "> ")
	if err != nil {
		return err
	}
	if apiToken == "" {
		return fmt.Errorf("API token cannot be empty")
	}

	project, err := prompt(reader, "Default project key (optional, press Enter to skip): ")
	if err != nil {
		return err
	}

	cfg := &config.Config{
		Domain:   domain,
		Email:    email,
		APIToken: apiToken,
		Project:  project,
	}

	// Validate credentials before saving
	fmt.Println()
	fmt.Println("Validating credentials...")
	jiraClient := client.New(cfg)
	user, err := jiraClient.ValidateCredentials()
	if err != nil {
		return fmt.Errorf("credential validation failed: %w", err)
	}

	fmt.Printf("✓ Successfully authenticated as: %s (%s)\n", user.DisplayName, user.EmailAddress)
	fmt.Println()

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, _ := config.GetConfigPath()
	fmt.Printf("✓ Configuration saved to: %s\n", configPath)
	fmt.Println()
	fmt.Println("You're all set! Try 'jiractx tickets \"project = " + orPlaceholder(project) + "\"'.")

	return nil
}

// prompt reads one trimmed line of input
func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func orPlaceholder(project string) string {
	if project == "" {
		return "PROJ"
	}
	return project
}
