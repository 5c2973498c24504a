package models

// User represents a Jira user
type User struct {
	Self         string `json:"self"`
	AccountID    string `json:"accountId"`
	AccountType  string `json:"accountType"`
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
	Active       bool   `json:"active"`
	TimeZone     string `json:"timeZone"`
	Locale       string `json:"locale"`
}

// FieldSchema represents the schema of a field
type FieldSchema struct {
	Type     string `json:"type"`
	System   string `json:"system,omitempty"`
	Custom   string `json:"custom,omitempty"`
	CustomID int    `json:"customId,omitempty"`
}

// Field represents a Jira field (standard or custom)
type Field struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Custom     bool        `json:"custom"`
	Orderable  bool        `json:"orderable"`
	Navigable  bool        `json:"navigable"`
	Searchable bool        `json:"searchable"`
	Schema     FieldSchema `json:"schema"`
}

// Issue represents a Jira issue. Fields holds whatever subset was
// requested in the search; value shapes vary per field (string, nested
// object, or null).
type Issue struct {
	ID     string                 `json:"id"`
	Key    string                 `json:"key"`
	Self   string                 `json:"self"`
	Fields map[string]interface{} `json:"fields"`
}

// SearchResponse represents one page of a JQL search response
type SearchResponse struct {
	Expand     string  `json:"expand"`
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// HasMore reports whether pages remain after this one
func (r *SearchResponse) HasMore() bool {
	return r.StartAt+len(r.Issues) < r.Total
}

// Status represents a workflow status
type Status struct {
	Self           string         `json:"self"`
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	StatusCategory StatusCategory `json:"statusCategory"`
}

// StatusCategory represents a status category
type StatusCategory struct {
	Self      string `json:"self"`
	ID        int    `json:"id"`
	Key       string `json:"key"`
	ColorName string `json:"colorName"`
	Name      string `json:"name"`
}

// IssueTypeStatuses is one element of the /project/{key}/statuses
// response: an issue type together with its valid workflow statuses
type IssueTypeStatuses struct {
	Self     string   `json:"self"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Subtask  bool     `json:"subtask"`
	Statuses []Status `json:"statuses"`
}

// IssueTypeStatusNames is the exported per-issue-type status list
type IssueTypeStatusNames struct {
	IssueType string   `json:"issue_type"`
	Statuses  []string `json:"available_statuses"`
}

// ProjectContext is the settings export: custom-field ID to name, plus
// the valid status names per issue type
type ProjectContext struct {
	CustomFields map[string]string      `json:"custom_fields"`
	Statuses     []IssueTypeStatusNames `json:"statuses"`
}

// ErrorResponse represents a Jira API error response
type ErrorResponse struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
	Status        int               `json:"status,omitempty"`
}
