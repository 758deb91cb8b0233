package wordpress

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Version is the current release of the widget-reference module.
const Version = "0.1.0"

// widgetsPath is the CommunityTech plugin's widget registry route, relative
// to the WordPress site root.
const widgetsPath = "/wp-json/communitytech/v1/elementor/widgets"

// Client is a minimal client for the CommunityTech widget registry REST API.
// Every request authenticates with HTTP Basic using a WordPress application
// password. There is deliberately no retry or rate limiting: the registry is
// a cheap read-only endpoint and the tool issues one request at a time.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a client for the given WordPress site root (e.g.
// "https://example.com") and credentials. A trailing slash on the site URL
// is tolerated.
func NewClient(siteURL, username, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(siteURL, "/") + widgetsPath,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ListWidgets retrieves the registry index: a map of widget identifier to
// opaque metadata. The identifiers feed the per-widget detail fetches.
func (c *Client) ListWidgets() (*WidgetList, error) {
	var list WidgetList
	if err := c.get(c.baseURL, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetWidget retrieves the full schema for a single widget: title, keywords,
// controls, and categories.
func (c *Client) GetWidget(name string) (*WidgetDetail, error) {
	var detail WidgetDetail
	if err := c.get(c.baseURL+"/"+name, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) get(url string, out any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
