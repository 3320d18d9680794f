package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Classifier decides whether a search response carries case data or one
// of the site's negative-result messages. Phrases are configuration, not
// code: new court layouts get supported by adding phrases.
type Classifier struct {
	phrases []string
}

// NewClassifier lower-cases the phrase list once. Matching is plain
// substring containment over the page's visible text.
func NewClassifier(phrases []string) *Classifier {
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return &Classifier{phrases: lowered}
}

// Match returns the first negative-result phrase found in the document's
// visible text, or "" when the response should proceed to extraction.
// The phrases are mutually corroborating, so order carries no meaning.
func (c *Classifier) Match(doc *goquery.Document) string {
	text := strings.ToLower(doc.Text())
	for _, phrase := range c.phrases {
		if strings.Contains(text, phrase) {
			return phrase
		}
	}
	return ""
}
