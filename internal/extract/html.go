package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements separate text when rendered; text on either side of them
// never reads as one token. Inline elements (b, span, a, ...) do not
// separate, which is what lets a split address reassemble.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"table": true, "tr": true, "td": true, "th": true, "blockquote": true,
	"pre": true, "section": true, "article": true, "header": true,
	"footer": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true,
}

// VisibleText returns the visible text of an HTML document: tags
// stripped, entity references decoded, script/style bodies skipped, and
// whitespace collapsed. Text inside inline elements stays joined to its
// neighbors, so an address like "alice@<b>example.com</b>" survives as
// one token; block boundaries become separators.
//
// Design decision: We parse with golang.org/x/net/html rather than
// stripping tags with a regex because:
//  1. It correctly handles the malformed HTML search engines emit
//  2. Entity references are decoded ("&#64;" becomes "@"), which regex
//     stripping would miss entirely
//  3. It reliably excludes script and style content, which is full of
//     hostname-shaped strings that are not harvest results
func VisibleText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// html.Parse recovers from almost anything; if it still fails,
		// the raw content is the best text we have.
		return content
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
			if blockElements[n.Data] {
				sb.WriteByte('\n')
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}
