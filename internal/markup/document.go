package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

const (
	// MaxSize limits markup input to 10MB to prevent memory exhaustion
	MaxSize = 10 * 1024 * 1024

	defaultCharset = "windows-1252"
)

// DefaultSkip lists the elements whose text is never visible.
var DefaultSkip = []string{"script", "style"}

// Document is a parsed, read-only HTML tree.
type Document struct {
	root    *html.Node
	charset string
}

// Parse decodes body to UTF-8 and parses it with the HTML5 algorithm.
// Scripting is off, so <noscript> content is parsed as markup.
// contentType may be empty. Malformed markup is recovered, never rejected.
func Parse(body []byte, contentType string) (*Document, error) {
	if len(body) > MaxSize {
		return nil, &toolerr.ParseError{
			Subject: "markup",
			Detail:  fmt.Sprintf("document exceeds maximum size of %d bytes", MaxSize),
		}
	}

	label := DetectCharset(body, contentType)

	var r io.Reader = bytes.NewReader(body)
	if label != "utf-8" {
		decoded, err := charset.NewReaderLabel(label, r)
		if err == nil {
			r = decoded
		} else {
			label = "utf-8"
		}
	}

	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, &toolerr.ParseError{Subject: "markup", Detail: err.Error()}
	}
	return &Document{root: root, charset: label}, nil
}

// ParseString parses markup that is already UTF-8 text.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s), "text/html; charset=utf-8")
}

// DetectCharset picks the encoding label for body.
//
// A charset in contentType wins, then a byte order mark or <meta> declaration.
// Undeclared bodies are UTF-8 when valid, otherwise the encoding is guessed
// statistically.
func DetectCharset(body []byte, contentType string) string {
	_, name, certain := charset.DetermineEncoding(body, contentType)
	if certain || name != defaultCharset {
		return normalizeLabel(name)
	}
	if utf8.Valid(body) {
		return "utf-8"
	}

	detector := chardet.NewHtmlDetector()
	result, err := detector.DetectBest(body)
	if err != nil || result == nil {
		return defaultCharset
	}
	return normalizeLabel(result.Charset)
}

func normalizeLabel(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "utf8" {
		return "utf-8"
	}
	return name
}

// Charset returns the encoding the document was decoded from.
func (d *Document) Charset() string {
	return d.charset
}

// Root returns the document node.
func (d *Document) Root() Node {
	return Node{n: d.root}
}

// Title returns the whitespace-normalized text of the first <title>
// element, or "" when there is none.
func (d *Document) Title() string {
	title, ok := d.Root().First("title")
	if !ok {
		return ""
	}
	return title.Text()
}

// VisibleText joins every text node outside the skipped elements. Each text
// node is trimmed and empty ones are dropped; the rest are separated by a
// single space. skip defaults to DefaultSkip.
func (d *Document) VisibleText(skip ...string) string {
	if len(skip) == 0 {
		skip = DefaultSkip
	}
	skipped := make(map[string]struct{}, len(skip))
	for _, tag := range skip {
		skipped[strings.ToLower(tag)] = struct{}{}
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			if _, ok := skipped[n.Data]; ok {
				return
			}
		case html.CommentNode, html.DoctypeNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)

	return strings.Join(parts, " ")
}

// Selection exposes the document to goquery for callers that need
// CSS selectors.
func (d *Document) Selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(d.root).Selection
}
