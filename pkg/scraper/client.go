package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the university timetable endpoint.
const DefaultBaseURL = "https://ssau.ru/rasp"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/106.0.0.0 YaBrowser/22.11.2.807 Yowser/2.5 Safari/537.36"

// Client handles HTTP requests to the SSAU timetable website
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new scraper client against the real timetable endpoint
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a different endpoint,
// mostly useful for tests and local mirrors.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// GetTimetable fetches the raw timetable page for a group. A zero week means
// "whatever the service considers the current week". Transport failures come
// back as *ConnectivityError, non-2xx responses as *RemoteServiceError.
func (c *Client) GetTimetable(ctx context.Context, groupID, week int) (*http.Response, error) {
	url := fmt.Sprintf("%s?groupId=%d", c.baseURL, groupID)
	if week > 0 {
		url += fmt.Sprintf("&selectedWeek=%d", week)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	// The site serves an error page to clients it does not recognize as a browser
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &RemoteServiceError{URL: url, StatusCode: resp.StatusCode}
	}

	return resp, nil
}
