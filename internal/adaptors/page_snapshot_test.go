package adaptors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Sample Audit Page</title>
<meta name="description" content="A page used to exercise the snapshot builder.">
<script type="application/ld+json">{"@type":"Article"}</script>
<style>body { color: red; }</style>
</head>
<body>
<h1>Main Heading</h1>
<h2>First Section</h2>
<h2>Second Section</h2>
<h3>Detail</h3>
<p>Visible body text lives here.</p>
<img src="chart.png" alt="a chart">
<img src="decor.png">
<a href="/about">About</a>
<a href="https://example.com/contact">Contact</a>
<a href="https://other.com/page">Elsewhere</a>
<a href="#section">Jump</a>
<a href="mailto:hi@example.com">Mail</a>
<script>var hidden = "should not become page text";</script>
</body>
</html>`

func TestBuildPageInput(t *testing.T) {
	page := BuildPageInput("https://example.com/sample", []byte(fixtureHTML), 750*time.Millisecond)

	require.NotNil(t, page)
	assert.Equal(t, "https://example.com/sample", page.URL)
	assert.Equal(t, "Sample Audit Page", page.Title)
	assert.Equal(t, "A page used to exercise the snapshot builder.", page.MetaDescription)
	assert.Equal(t, []string{"Main Heading"}, page.H1s)
	assert.Equal(t, []string{"First Section", "Second Section"}, page.H2s)
	assert.Equal(t, []string{"Detail"}, page.H3s)
	assert.Equal(t, 750, page.LoadTimeMs)
	assert.Equal(t, len(fixtureHTML), page.HTMLSize)
	assert.Equal(t, fixtureHTML, page.RawHTML)
}

func TestBuildPageInputImages(t *testing.T) {
	page := BuildPageInput("https://example.com/sample", []byte(fixtureHTML), 0)

	require.Len(t, page.Images, 2)
	assert.Equal(t, "chart.png", page.Images[0].Src)
	assert.Equal(t, "a chart", page.Images[0].Alt)
	assert.Empty(t, page.Images[1].Alt)
}

func TestBuildPageInputLinks(t *testing.T) {
	page := BuildPageInput("https://example.com/sample", []byte(fixtureHTML), 0)

	// Fragment and mailto anchors are dropped, the rest classified by host.
	require.Len(t, page.Links, 3)
	assert.Equal(t, "https://example.com/about", page.Links[0].Href)
	assert.True(t, page.Links[0].IsInternal)
	assert.True(t, page.Links[1].IsInternal)
	assert.Equal(t, "https://other.com/page", page.Links[2].Href)
	assert.False(t, page.Links[2].IsInternal)
}

func TestBuildPageInputText(t *testing.T) {
	page := BuildPageInput("https://example.com/sample", []byte(fixtureHTML), 0)

	assert.Contains(t, page.PlainText, "Visible body text lives here.")
	assert.NotContains(t, page.PlainText, "should not become page text")
	assert.NotContains(t, page.PlainText, "color: red")
	assert.Greater(t, page.WordCount, 0)
}

func TestBuildPageInputStructuredData(t *testing.T) {
	page := BuildPageInput("https://example.com/sample", []byte(fixtureHTML), 0)

	require.Len(t, page.StructuredData, 1)
	assert.Contains(t, page.StructuredData[0], `"@type":"Article"`)
	// JSON-LD payloads are data, not prose.
	assert.NotContains(t, page.PlainText, `"@type"`)
}

func TestBuildPageInputMalformedHTML(t *testing.T) {
	page := BuildPageInput("https://example.com/broken", []byte("<h1>Unclosed <p>still text"), 0)

	require.NotNil(t, page)
	assert.Equal(t, "https://example.com/broken", page.URL)
	assert.Contains(t, page.PlainText, "still text")
}
