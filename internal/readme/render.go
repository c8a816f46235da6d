// Package readme maintains the managed blog post section of a README file.
//
// The section is delimited by a literal marker pair and is rewritten
// wholesale on every update; text outside the markers is never touched.
package readme

import (
	"fmt"
	"strings"

	"github.com/shrivarsha/readmefeed/internal/blog"
)

const (
	// StartMarker and EndMarker delimit the managed region.
	StartMarker = "<!-- BLOG-POST-LIST:START -->"
	EndMarker   = "<!-- BLOG-POST-LIST:END -->"

	emptyFeedLine = "No blog posts available at the moment."
)

// RenderBlock produces the full managed region, markers included, for the
// given posts. Zero posts render a placeholder line instead of a list.
func RenderBlock(posts []blog.Post) string {
	var b strings.Builder
	b.WriteString(StartMarker)
	b.WriteString("\n")

	if len(posts) == 0 {
		b.WriteString(emptyFeedLine)
		b.WriteString("\n")
	}

	for _, post := range posts {
		fmt.Fprintf(&b, "- [%s](%s) - *%s*\n", post.Title, post.Link, post.Published)
		if summary := strings.TrimSpace(post.Summary); summary != "" {
			fmt.Fprintf(&b, "  > %s\n", summary)
		}
		b.WriteString("\n")
	}

	b.WriteString(EndMarker)
	return b.String()
}
