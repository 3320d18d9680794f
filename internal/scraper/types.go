package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SearchRequest identifies a case on the court website. All fields are
// free-form strings supplied by the caller; Validate must pass before
// the request is submitted.
type SearchRequest struct {
	CaseType   string `json:"case_type"`
	CaseNumber string `json:"case_number"`
	FilingYear string `json:"filing_year"`
}

// Reference formats the case identifier the way operators expect to see
// it in logs and error messages: TYPE/NUMBER/YEAR
func (r SearchRequest) Reference() string {
	return fmt.Sprintf("%s/%s/%s", strings.ToUpper(r.CaseType), r.CaseNumber, r.FilingYear)
}

const (
	minFilingYear    = 1950
	maxCaseNumberLen = 10
)

var caseNumberPattern = regexp.MustCompile(`^\d+$`)

// Validate checks the request fields against the court's input rules:
// numeric case number of 1-10 digits, filing year between 1950 and the
// current year, non-empty case type.
func (r SearchRequest) Validate() error {
	if strings.TrimSpace(r.CaseType) == "" {
		return fmt.Errorf("case type is required")
	}

	number := strings.TrimSpace(r.CaseNumber)
	if !caseNumberPattern.MatchString(number) {
		return fmt.Errorf("case number must be numeric: %q", r.CaseNumber)
	}
	if len(number) > maxCaseNumberLen {
		return fmt.Errorf("case number must be at most %d digits: %q", maxCaseNumberLen, r.CaseNumber)
	}

	year, err := strconv.Atoi(strings.TrimSpace(r.FilingYear))
	if err != nil {
		return fmt.Errorf("filing year must be a number: %q", r.FilingYear)
	}
	currentYear := time.Now().Year()
	if year < minFilingYear || year > currentYear {
		return fmt.Errorf("filing year must be between %d and %d: %q", minFilingYear, currentYear, r.FilingYear)
	}

	return nil
}

// Document types assigned by link classification
const (
	DocTypeOrder    = "order"
	DocTypeJudgment = "judgment"
	DocTypeNotice   = "notice"
	DocTypeDocument = "document"
)

// DocumentLink is a downloadable document discovered on a results page.
// URL is always absolute.
type DocumentLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// StatusIncomplete is reported as the case status when the search
// succeeded but extraction discovered nothing usable. Partial success is
// always reported, never folded into failure.
const StatusIncomplete = "Case found but information extraction incomplete"

// CaseResult is the unified outcome of one search invocation. When
// Success is false only Error and RawResponse are populated. RawResponse
// always carries the original markup for audit and is never re-parsed.
type CaseResult struct {
	Success         bool           `json:"success"`
	Error           string         `json:"error,omitempty"`
	RawResponse     string         `json:"raw_response,omitempty"`
	PartiesNames    string         `json:"parties_names,omitempty"`
	FilingDate      string         `json:"filing_date,omitempty"`
	NextHearingDate string         `json:"next_hearing_date,omitempty"`
	CaseStatus      string         `json:"case_status,omitempty"`
	DocumentLinks   []DocumentLink `json:"document_links,omitempty"`
}

// FormContext carries the hidden form fields harvested from the search
// page. The values are opaque to the engine; they are captured and
// replayed so the site accepts the submission.
type FormContext map[string]string

// CaseTypes maps Delhi High Court case type codes to their descriptions.
// The vocabulary is static configuration; the engine never derives it.
var CaseTypes = map[string]string{
	"CRL.A":     "Criminal Appeal",
	"CRL.M.C":   "Criminal Miscellaneous",
	"CRL.REV.P": "Criminal Revision Petition",
	"W.P.(C)":   "Writ Petition (Civil)",
	"W.P.(CRL)": "Writ Petition (Criminal)",
	"FAO":       "First Appeal from Order",
	"RFA":       "Regular First Appeal",
	"CM":        "Civil Miscellaneous",
	"CS(OS)":    "Civil Suit (Original Side)",
	"CS(COMM)":  "Commercial Suit",
	"ARB.P":     "Arbitration Petition",
	"CONT.CAS":  "Contempt Case",
	"MAT.APP":   "Matrimonial Appeal",
}
