package jira

import (
	"fmt"

	"github.com/serena-hb/jiractx/pkg/client"
	"github.com/serena-hb/jiractx/pkg/models"
)

// SearchService handles issue search operations
type SearchService struct {
	client *client.Client
}

// NewSearchService creates a new search service
func NewSearchService(client *client.Client) *SearchService {
	return &SearchService{client: client}
}

// SearchRequest represents a JQL search request
type SearchRequest struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults,omitempty"`
	Fields     []string `json:"fields,omitempty"`
}

// PageFunc is invoked after every fetched page with the cumulative
// number of issues retrieved and the total reported by the API.
type PageFunc func(fetched, total int)

// SearchPage executes a JQL query and returns a single page of results
// starting at the given offset.
func (s *SearchService) SearchPage(jql string, startAt, maxResults int, fields []string) (*models.SearchResponse, error) {
	if jql == "" {
		return nil, fmt.Errorf("JQL query cannot be empty")
	}
	if startAt < 0 {
		return nil, fmt.Errorf("startAt cannot be negative")
	}
	if maxResults <= 0 {
		return nil, fmt.Errorf("maxResults must be positive")
	}

	req := SearchRequest{
		JQL:        jql,
		StartAt:    startAt,
		MaxResults: maxResults,
		Fields:     fields,
	}

	var result models.SearchResponse
	var errorResp models.ErrorResponse

	resp, err := s.client.PostRequest().
		SetBody(req).
		SetResult(&result).
		SetError(&errorResp).
		Post("/search/jql")

	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode(), formatErrorResponse(&errorResp))
	}

	return &result, nil
}

// SearchAll retrieves every issue matching a JQL query using offset
// pagination: pages of up to pageSize issues are fetched sequentially
// starting at offset 0, and the offset advances by the number of
// issues actually returned. The loop stops when a page comes back
// short, when the cumulative count reaches the reported total, or when
// a page is empty. Issues are returned in fetch order.
//
// onPage may be nil; when set it is called once per fetched page.
// Any request failure aborts the run with no partial-result recovery.
func (s *SearchService) SearchAll(jql string, fields []string, pageSize int, onPage PageFunc) ([]models.Issue, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive")
	}

	var all []models.Issue
	startAt := 0

	for {
		page, err := s.SearchPage(jql, startAt, pageSize, fields)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Issues...)

		if onPage != nil {
			onPage(len(all), page.Total)
		}

		if len(page.Issues) == 0 || len(page.Issues) < pageSize || !page.HasMore() {
			break
		}

		startAt += len(page.Issues)
	}

	return all, nil
}
