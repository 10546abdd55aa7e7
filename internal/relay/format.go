package relay

import "fmt"

// Format builds the three-line notification text: author reference,
// primary message, comment. The author becomes a Markdown link when a URL
// is present. Fields are treated as opaque text; an empty comment leaves
// an empty trailing line, which some clients render as spacing.
func Format(author, authorURL, message, comment string) string {
	authorLine := author
	if authorURL != "" {
		authorLine = fmt.Sprintf("[%s](%s)", author, authorURL)
	}
	return authorLine + "\n" + message + "\n" + comment
}
