package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PartialResult holds the fields discoverable by extraction. Empty
// string means "not discovered"; values are cell text with surrounding
// whitespace stripped and nothing else cleaned.
type PartialResult struct {
	PartiesNames    string
	FilingDate      string
	NextHearingDate string
	CaseStatus      string
}

// fieldRule pairs a predicate over the normalized (lower-cased) label
// cell with a setter on the partial result. Rules are evaluated in
// order; the first match consumes the cell pair. Supporting a new court
// layout means adding a rule, not a branch.
type fieldRule struct {
	match func(label string) bool
	apply func(r *PartialResult, value string)
}

var structuredRules = []fieldRule{
	{
		match: func(label string) bool {
			return strings.Contains(label, "parties") ||
				strings.Contains(label, "petitioner") ||
				strings.Contains(label, "respondent")
		},
		apply: func(r *PartialResult, value string) {
			// multi-row party disclosure: later rows join with " vs "
			if r.PartiesNames == "" {
				r.PartiesNames = value
			} else {
				r.PartiesNames += " vs " + value
			}
		},
	},
	{
		match: func(label string) bool {
			return strings.Contains(label, "filing") && strings.Contains(label, "date")
		},
		apply: func(r *PartialResult, value string) { r.FilingDate = value },
	},
	{
		match: func(label string) bool {
			return strings.Contains(label, "next") &&
				(strings.Contains(label, "hearing") || strings.Contains(label, "date"))
		},
		apply: func(r *PartialResult, value string) { r.NextHearingDate = value },
	},
	{
		match: func(label string) bool { return strings.Contains(label, "status") },
		apply: func(r *PartialResult, value string) { r.CaseStatus = value },
	},
}

// ExtractStructured scans every table row for (label, value) cell pairs
// and applies the first matching field rule. Rows with fewer than two
// cells are skipped; cells beyond the second are ignored. Malformed
// tables never fail extraction, they just yield nothing.
func ExtractStructured(doc *goquery.Document) PartialResult {
	var result PartialResult

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() < 2 {
				return
			}
			label := strings.ToLower(strings.TrimSpace(cells.Eq(0).Text()))
			value := strings.TrimSpace(cells.Eq(1).Text())

			for _, rule := range structuredRules {
				if rule.match(label) {
					rule.apply(&result, value)
					break
				}
			}
		})
	})

	return result
}

var (
	datePattern    = regexp.MustCompile(`\b\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}\b`)
	partiesPattern = regexp.MustCompile(`(?i)([A-Za-z\s]+)\s+vs?\s+([A-Za-z\s]+)`)
)

// NeedsFallback reports whether the free-text pass should run. It fires
// only when parties, filing date and status are all missing; a found
// next hearing date alone does not suppress it. That asymmetry matches
// the production behavior this engine replaces and must not be changed
// without sign-off, since sites surfacing only a hearing date depend on
// it.
func NeedsFallback(r PartialResult) bool {
	return r.PartiesNames == "" && r.FilingDate == "" && r.CaseStatus == ""
}

// ExtractFallback runs date and party regexes over the main content
// region (div#main, else the whole body) and fills only fields that are
// still empty. It never overwrites structured output.
func ExtractFallback(doc *goquery.Document, r PartialResult) PartialResult {
	region := doc.Find("div#main")
	if region.Length() == 0 {
		region = doc.Find("body")
	}
	text := region.Text()
	if text == "" {
		text = doc.Text()
	}

	dates := datePattern.FindAllString(text, -1)
	if len(dates) > 0 && r.FilingDate == "" {
		r.FilingDate = dates[0]
	}
	if r.NextHearingDate == "" {
		// second distinct date; a page repeating one date is not a
		// hearing schedule
		for i := 1; i < len(dates); i++ {
			if dates[i] != r.FilingDate {
				r.NextHearingDate = dates[i]
				break
			}
		}
	}

	if r.PartiesNames == "" {
		if m := partiesPattern.FindStringSubmatch(text); m != nil {
			r.PartiesNames = strings.TrimSpace(m[1]) + " vs " + strings.TrimSpace(m[2])
		}
	}

	return r
}
