package client

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/serena-hb/jiractx/pkg/config"
	"github.com/sirupsen/logrus"
)

// Client represents a Jira API client
type Client struct {
	BaseURL    string
	Email      string
	APIToken   string
	HTTPClient *resty.Client
}

// New creates a new Jira API client from config
func New(cfg *config.Config) *Client {
	client := &Client{
		BaseURL:  cfg.GetBaseURL(),
		Email:    cfg.Email,
		APIToken: cfg.APIToken,
	}

	client.HTTPClient = resty.New().
		SetBaseURL(client.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(4 * time.Second).
		SetLogger(logrus.StandardLogger()).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return ShouldRetry(r.StatusCode())
		}).
		OnAfterResponse(func(c *resty.Client, r *resty.Response) error {
			logrus.WithFields(logrus.Fields{
				"method":   r.Request.Method,
				"url":      r.Request.URL,
				"status":   r.StatusCode(),
				"duration": r.Time(),
			}).Debug("jira api call")
			return nil
		})

	authHeader := client.getAuthHeader()
	client.HTTPClient.SetHeader("Authorization", authHeader)

	return client
}

// getAuthHeader returns the Basic Auth header value
func (c *Client) getAuthHeader() string {
	credentials := fmt.Sprintf("%s:%s", c.Email, c.APIToken)
	encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
	return fmt.Sprintf("Basic %s", encoded)
}

// GetRequest creates a new GET request
func (c *Client) GetRequest() *resty.Request {
	return c.HTTPClient.R()
}

// PostRequest creates a new POST request
func (c *Client) PostRequest() *resty.Request {
	return c.HTTPClient.R()
}
