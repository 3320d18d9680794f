package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// docTypeRules classify a link by its anchor text. First keyword match
// wins; extending the taxonomy is a table entry, not a branch.
var docTypeRules = []struct {
	keyword string
	docType string
}{
	{"order", DocTypeOrder},
	{"judgment", DocTypeJudgment},
	{"judgement", DocTypeJudgment},
	{"notice", DocTypeNotice},
}

func classifyDocumentType(title string) string {
	lowered := strings.ToLower(title)
	for _, rule := range docTypeRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.docType
		}
	}
	return DocTypeDocument
}

// CollectDocumentLinks harvests every anchor whose href looks like a
// retrievable document (contains ".pdf" or "download", case-insensitive)
// and resolves it against the site base. Document order is preserved and
// repeated URLs are kept; each anchor occurrence is one entry.
func CollectDocumentLinks(doc *goquery.Document, base *url.URL) []DocumentLink {
	var links []DocumentLink

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		lowered := strings.ToLower(href)
		if !strings.Contains(lowered, ".pdf") && !strings.Contains(lowered, "download") {
			return
		}

		resolved := href
		if ref, err := url.Parse(href); err == nil {
			resolved = base.ResolveReference(ref).String()
		}

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title = "Document"
		}

		links = append(links, DocumentLink{
			URL:   resolved,
			Title: title,
			Type:  classifyDocumentType(title),
		})
	})

	return links
}
