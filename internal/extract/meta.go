package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageMeta identifies the fetched page in the UI header and the PDF report.
type PageMeta struct {
	Title       string
	Description string
	Lang        string
}

// Meta pulls the page title, description, and declared language. Best
// effort: unparseable or bare documents yield zero values, never an error.
func Meta(input []byte) PageMeta {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return PageMeta{}
	}

	var m PageMeta
	m.Title = strings.TrimSpace(doc.Find("head title").First().Text())
	if m.Title == "" {
		if v, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
			m.Title = strings.TrimSpace(v)
		}
	}

	if v, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		m.Description = strings.TrimSpace(v)
	}
	if m.Description == "" {
		if v, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
			m.Description = strings.TrimSpace(v)
		}
	}

	if v, ok := doc.Find("html").First().Attr("lang"); ok {
		m.Lang = strings.TrimSpace(v)
	}
	return m
}
