package jira

import (
	"fmt"

	"github.com/serena-hb/jiractx/pkg/client"
	"github.com/serena-hb/jiractx/pkg/models"
)

// ProjectService handles project metadata operations
type ProjectService struct {
	client *client.Client
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(client *client.Client) *ProjectService {
	return &ProjectService{client: client}
}

// Statuses retrieves the valid workflow statuses for every issue type
// in a project. The API returns all issue types in a single response,
// in the project's configured order.
func (s *ProjectService) Statuses(projectKey string) ([]models.IssueTypeStatuses, error) {
	if projectKey == "" {
		return nil, fmt.Errorf("project key cannot be empty")
	}

	var statuses []models.IssueTypeStatuses
	var errorResp models.ErrorResponse

	resp, err := s.client.GetRequest().
		SetResult(&statuses).
		SetError(&errorResp).
		Get(fmt.Sprintf("/project/%s/statuses", projectKey))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch statuses for project %s: %w", projectKey, err)
	}

	if resp.IsError() {
		if resp.StatusCode() == 404 {
			return nil, fmt.Errorf("project '%s' not found or you don't have access", projectKey)
		}
		return nil, fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode(), formatErrorResponse(&errorResp))
	}

	return statuses, nil
}

// ProjectContext assembles the settings export for a project: custom
// field names keyed by ID plus the status names valid for each issue
// type. Two requests total; any failure aborts.
func ProjectContext(fields *FieldService, projects *ProjectService, projectKey string) (*models.ProjectContext, error) {
	customFields, err := fields.CustomFieldNames()
	if err != nil {
		return nil, err
	}

	issueTypes, err := projects.Statuses(projectKey)
	if err != nil {
		return nil, err
	}

	ctx := &models.ProjectContext{
		CustomFields: customFields,
		Statuses:     make([]models.IssueTypeStatusNames, 0, len(issueTypes)),
	}

	for _, it := range issueTypes {
		names := make([]string, 0, len(it.Statuses))
		for _, st := range it.Statuses {
			names = append(names, st.Name)
		}
		ctx.Statuses = append(ctx.Statuses, models.IssueTypeStatusNames{
			IssueType: it.Name,
			Statuses:  names,
		})
	}

	return ctx, nil
}
