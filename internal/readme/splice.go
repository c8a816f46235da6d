package readme

import (
	"errors"
	"strings"
)

// ErrMarkersNotFound reports a document without the managed region markers.
var ErrMarkersNotFound = errors.New("blog post markers not found")

// sectionHeading is where the permissive policy creates a managed region
// when the markers are missing from the document.
const sectionHeading = "## Latest Blog Posts"

// Splice replaces the managed region of content with block. The region runs
// from the first start marker through the first end marker after it, both
// inclusive. changed is false when the document already holds block.
// A document without both markers is returned untouched with
// ErrMarkersNotFound.
func Splice(content, block string) (string, bool, error) {
	start := strings.Index(content, StartMarker)
	if start < 0 {
		return content, false, ErrMarkersNotFound
	}
	end := strings.Index(content[start+len(StartMarker):], EndMarker)
	if end < 0 {
		return content, false, ErrMarkersNotFound
	}
	spanEnd := start + len(StartMarker) + end + len(EndMarker)

	updated := content[:start] + block + content[spanEnd:]
	return updated, updated != content, nil
}

// SpliceOrInsert behaves like Splice but creates the managed region when the
// markers are missing: the block is inserted directly under the section
// heading, or a new heading plus block is appended when the heading is
// absent as well.
func SpliceOrInsert(content, block string) (string, bool) {
	updated, changed, err := Splice(content, block)
	if err == nil {
		return updated, changed
	}

	if idx := strings.Index(content, sectionHeading); idx >= 0 {
		if lineEnd := strings.Index(content[idx:], "\n"); lineEnd >= 0 {
			insertAt := idx + lineEnd
			return content[:insertAt] + "\n\n" + block + content[insertAt:], true
		}
		// Heading is the last line of the file.
		return content + "\n\n" + block + "\n", true
	}

	return content + "\n\n" + sectionHeading + "\n\n" + block + "\n", true
}
