package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// HTML strips scripting from rich-text editor output while keeping the
// markup (including <img>) the editor produces.
func HTML(input string) string {
	return policy.Sanitize(input)
}
