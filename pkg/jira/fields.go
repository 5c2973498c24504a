package jira

import (
	"fmt"
	"strings"

	"github.com/serena-hb/jiractx/pkg/client"
	"github.com/serena-hb/jiractx/pkg/models"
)

// FieldService handles field-related operations
type FieldService struct {
	client *client.Client
}

// NewFieldService creates a new FieldService instance
func NewFieldService(client *client.Client) *FieldService {
	return &FieldService{
		client: client,
	}
}

// ListFields retrieves all fields from Jira, standard and custom
func (s *FieldService) ListFields() ([]models.Field, error) {
	var fields []models.Field
	var errorResp models.ErrorResponse

	resp, err := s.client.GetRequest().
		SetResult(&fields).
		SetError(&errorResp).
		Get("/field")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch fields: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode(), formatErrorResponse(&errorResp))
	}

	return fields, nil
}

// CustomFieldNames retrieves all fields and reduces them to a mapping
// of custom-field ID to display name.
func (s *FieldService) CustomFieldNames() (map[string]string, error) {
	fields, err := s.ListFields()
	if err != nil {
		return nil, err
	}

	custom := make(map[string]string)
	for _, field := range fields {
		if field.Custom {
			custom[field.ID] = field.Name
		}
	}

	return custom, nil
}

// formatErrorResponse formats a Jira error response for display
func formatErrorResponse(errResp *models.ErrorResponse) string {
	var messages []string

	if len(errResp.ErrorMessages) > 0 {
		messages = append(messages, strings.Join(errResp.ErrorMessages, "; "))
	}

	if len(errResp.Errors) > 0 {
		for field, msg := range errResp.Errors {
			messages = append(messages, fmt.Sprintf("%s: %s", field, msg))
		}
	}

	if len(messages) == 0 {
		return "unknown error"
	}

	return strings.Join(messages, "; ")
}
