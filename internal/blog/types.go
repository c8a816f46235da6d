// Package blog provides a client for fetching posts from a blog RSS feed.
package blog

// Post represents a normalized blog post from the feed.
type Post struct {
	Title     string
	Link      string
	Published string
	Summary   string
}
