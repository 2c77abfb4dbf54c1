// Package markup parses HTML into a read-only tree and answers the queries
// the scraper tools need: by tag, by class, by attribute and by XPath.
//
// Parsing never fails on malformed markup; the HTML5 algorithm recovers the
// same way a browser does. Bodies are decoded to UTF-8 first, using the
// declared charset when there is one and statistical detection otherwise.
//
// Example Usage:
//
//	doc, err := markup.Parse(body, resp.Header.Get("Content-Type"))
//	title := doc.Title()
//	for _, a := range doc.Root().FindAll("a") {
//		href, _ := a.Attr("href")
//	}
package markup
