package adaptors

import (
	"net/url"
	"strings"
	"time"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"

	"golang.org/x/net/html"
)

// BuildPageInput turns a fetched document into the snapshot the scoring
// engine consumes. This is the crawler side of the contract: it does the
// one structural HTML parse, the engine itself only pattern-matches.
// A body that fails to parse still yields a usable snapshot - x/net/html
// recovers from malformed markup rather than failing.
func BuildPageInput(pageURL string, body []byte, loadTime time.Duration) *models.PageInput {
	input := &models.PageInput{
		URL:        pageURL,
		LoadTimeMs: int(loadTime.Milliseconds()),
		HTMLSize:   len(body),
		RawHTML:    string(body),
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return input
	}

	base, _ := url.Parse(pageURL)

	var textParts []string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if input.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					input.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var name, content string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "name":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if strings.EqualFold(name, "description") && input.MetaDescription == "" {
					input.MetaDescription = content
				}
			case "h1":
				input.H1s = append(input.H1s, nodeText(n))
			case "h2":
				input.H2s = append(input.H2s, nodeText(n))
			case "h3":
				input.H3s = append(input.H3s, nodeText(n))
			case "img":
				img := models.PageImage{}
				for _, attr := range n.Attr {
					switch attr.Key {
					case "src":
						img.Src = attr.Val
					case "alt":
						img.Alt = strings.TrimSpace(attr.Val)
					}
				}
				input.Images = append(input.Images, img)
			case "a":
				if link, ok := resolveLink(n, base); ok {
					input.Links = append(input.Links, link)
				}
			case "script":
				for _, attr := range n.Attr {
					if attr.Key == "type" && strings.EqualFold(attr.Val, "application/ld+json") {
						if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
							input.StructuredData = append(input.StructuredData, n.FirstChild.Data)
						}
					}
				}
				return // script bodies are not page text
			case "style":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				textParts = append(textParts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	input.PlainText = strings.Join(textParts, " ")
	input.WordCount = len(strings.Fields(input.PlainText))
	return input
}

// nodeText collects the visible text under a node.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// resolveLink classifies an anchor as internal or external against the base
// URL host. Anchors, javascript: and mail links are skipped.
func resolveLink(n *html.Node, base *url.URL) (models.PageLink, bool) {
	var href string
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			href = strings.TrimSpace(attr.Val)
		}
	}
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
		return models.PageLink{}, false
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return models.PageLink{}, false
	}
	if base != nil {
		parsed = base.ResolveReference(parsed)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return models.PageLink{}, false
	}

	isInternal := base != nil && parsed.Host == base.Host
	return models.PageLink{Href: parsed.String(), IsInternal: isInternal}, true
}
