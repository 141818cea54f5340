package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLStripsScripts(t *testing.T) {
	out := HTML(`<p>hello</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>hello</p>", out)
}

func TestHTMLKeepsImages(t *testing.T) {
	out := HTML(`<p>body</p><img src="https://bucket.s3.us-east-1.amazonaws.com/images/x.jpg">`)
	assert.Contains(t, out, "<img")
	assert.Contains(t, out, "images/x.jpg")
}

func TestHTMLDropsEventHandlers(t *testing.T) {
	out := HTML(`<p onclick="steal()">text</p>`)
	assert.Equal(t, "<p>text</p>", out)
}
