package blog

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	maxSummaryLen  = 150

	titlePlaceholder = "No Title"
	datePlaceholder  = "Unknown date"
)

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the fetch timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// Client fetches posts from a blog RSS feed.
type Client struct {
	httpClient HTTPClient
}

// NewClient creates a new RSS feed client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPosts fetches the most recent posts from the RSS feed at feedURL.
// Results are limited to maxPosts eligible items, in feed order; an item
// whose title or link element is missing is skipped.
func (c *Client) FetchPosts(ctx context.Context, feedURL string, maxPosts int) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed returned HTTP %d for %s", resp.StatusCode, feedURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	return parseFeed(body, maxPosts)
}

func parseFeed(data []byte, maxPosts int) ([]Post, error) {
	var doc rssDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]Post, 0, maxPosts)
	for _, item := range doc.Channel.Items {
		if maxPosts > 0 && len(posts) >= maxPosts {
			break
		}
		// Title and link elements gate admission; their text may be empty.
		if item.Title == nil || item.Link == nil {
			continue
		}
		posts = append(posts, newPost(item))
	}
	return posts, nil
}

func newPost(item rssItem) Post {
	title := strings.TrimSpace(*item.Title)
	if title == "" {
		title = titlePlaceholder
	}

	published := datePlaceholder
	if raw := strings.TrimSpace(item.PubDate); raw != "" {
		published = normalizeDate(raw)
	}

	return Post{
		Title:     title,
		Link:      strings.TrimSpace(*item.Link),
		Published: published,
		Summary:   cleanSummary(item.Description),
	}
}

// dateLayouts are tried in order against a pubDate whose timezone suffix has
// been stripped. Later entries drop the weekday, then the time of day.
var dateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05",
	"02 Jan 2006 15:04:05",
	"Mon, 02 Jan 2006",
}

// normalizeDate renders an RSS pubDate as "January 02, 2006". A date that
// matches none of the known layouts is returned unchanged.
func normalizeDate(raw string) string {
	s := raw
	if i := strings.Index(s, "+"); i >= 0 {
		s = s[:i]
	} else if strings.Contains(s, " GMT") {
		s = strings.ReplaceAll(s, " GMT", "")
	} else if strings.Contains(s, " UTC") {
		s = strings.ReplaceAll(s, " UTC", "")
	}
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 02, 2006")
		}
	}
	return raw
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// cleanSummary strips markup tags from a feed description, collapses
// newlines, and truncates the result to maxSummaryLen characters.
func cleanSummary(raw string) string {
	s := tagPattern.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxSummaryLen {
		s = string(r[:maxSummaryLen]) + "..."
	}
	return s
}

// rssDoc and rssItem are private XML parsing structs. Title and Link are
// pointers so a missing element is distinguishable from an empty one.
type rssDoc struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       *string `xml:"title"`
	Link        *string `xml:"link"`
	PubDate     string  `xml:"pubDate"`
	Description string  `xml:"description"`
}
