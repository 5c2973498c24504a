package cmd

import (
	"strings"
	"testing"

	"github.com/serena-hb/jiractx/pkg/models"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than max", "ABC-123", 12, "ABC-123"},
		{"exactly max", "ABCDEFGHIJ", 10, "ABCDEFGHIJ"},
		{"longer than max", "a very long ticket summary here", 10, "a very ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-01-15T10:30:00.000+0900", "2025-01-15"},
		{"2025-01-15", "2025-01-15"},
		{"", ""},
		{"short", "short"},
	}

	for _, tt := range tests {
		if got := dateOf(tt.input); got != tt.want {
			t.Errorf("dateOf(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParentInfo(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
		want   string
	}{
		{
			"no parent",
			map[string]interface{}{"summary": "standalone"},
			"-",
		},
		{
			"null parent",
			map[string]interface{}{"parent": nil},
			"-",
		},
		{
			"parent with summary",
			map[string]interface{}{
				"parent": map[string]interface{}{
					"key": "ABC-1",
					"fields": map[string]interface{}{
						"summary": "Parent epic",
					},
				},
			},
			"[ABC-1] Parent epic",
		},
		{
			"parent without summary",
			map[string]interface{}{
				"parent": map[string]interface{}{"key": "ABC-1"},
			},
			"[ABC-1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parentInfo(tt.fields); got != tt.want {
				t.Errorf("parentInfo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTicketRow(t *testing.T) {
	issue := models.Issue{
		Key: "ABC-42",
		Fields: map[string]interface{}{
			"summary": "Fix the login flow",
			"status":  map[string]interface{}{"name": "In Progress"},
			"created": "2025-03-02T09:00:00.000+0900",
		},
	}

	row := formatTicketRow(issue)

	for _, want := range []string{"ABC-42", "In Progress", "2025-03-02", "Fix the login flow", "-"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
}

func TestNestedName_ToleratesNulls(t *testing.T) {
	fields := map[string]interface{}{
		"status":   nil,
		"priority": "not-an-object",
	}

	if got := nestedName(fields, "status"); got != "" {
		t.Errorf("nestedName(nil status) = %q, want empty", got)
	}
	if got := nestedName(fields, "priority"); got != "" {
		t.Errorf("nestedName(non-object) = %q, want empty", got)
	}
	if got := nestedName(fields, "missing"); got != "" {
		t.Errorf("nestedName(missing) = %q, want empty", got)
	}
}
