package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SummaryText strips the markup from a catalog summary and collapses whitespace.
// Malformed markup is returned with whitespace collapsed but otherwise untouched.
func SummaryText(summary string) string {
	if summary == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary))
	if err != nil {
		return strings.Join(strings.Fields(summary), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
