package loader

import (
	"strings"

	"golang.org/x/net/html"
)

// extractHTMLMetadata pulls the document title and head meta tags out of
// HTML source. Malformed HTML is tolerated: the parser recovers, and a
// document with no usable head simply yields no metadata.
func extractHTMLMetadata(source string) map[string]string {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil
	}

	metadata := make(map[string]string)
	head := findElement(doc, "head")
	if head == nil {
		return metadata
	}

	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "title":
			if title := textContent(c); title != "" {
				metadata["title"] = title
			}
		case "meta":
			name, content := "", ""
			for _, attr := range c.Attr {
				switch attr.Key {
				case "name", "property":
					name = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if name != "" && content != "" {
				metadata[name] = content
			}
		}
	}
	return metadata
}

// findElement returns the first element with the given tag name, depth
// first.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent returns the concatenated text of a node's descendants,
// trimmed.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
