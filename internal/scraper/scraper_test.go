package scraper

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtlens/casefetch/internal/config"
	"github.com/courtlens/casefetch/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger("error", "text")
	require.NoError(t, err)
	return log
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		CourtBaseURL:    baseURL,
		SearchPath:      "/case_status.asp",
		UserAgent:       "test-agent",
		ScraperTimeout:  5 * time.Second,
		DocumentTimeout: 5 * time.Second,
		NotFoundPhrases: testPhrases,
	}
}

// courtSite fakes the court website: a tokenized search form on GET and
// a fixed results body on POST.
func courtSite(resultsHTML string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			io.WriteString(w, `<form>
				<input type="hidden" name="csrf_token" value="tok"/>
			</form>`)
			return
		}
		io.WriteString(w, resultsHTML)
	}
}

var validRequest = SearchRequest{CaseType: "CRL.A", CaseNumber: "1234", FilingYear: "2023"}

func TestSearchCaseStructuredResults(t *testing.T) {
	ts := httptest.NewServer(courtSite(`<html><body>
		<table>
			<tr><td>Petitioner</td><td>A Kumar</td></tr>
			<tr><td>Respondent</td><td>B Singh</td></tr>
			<tr><td>Filing Date</td><td>01/02/2020</td></tr>
			<tr><td>Next Hearing Date</td><td>15/03/2024</td></tr>
			<tr><td>Case Status</td><td>Pending</td></tr>
		</table>
		<a href="/orders/1.pdf">Order dated 01.02.2020</a>
	</body></html>`))
	defer ts.Close()

	s := NewScraper(testConfig(ts.URL), testLogger(t))
	result, err := s.SearchCase(context.Background(), validRequest)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, "A Kumar vs B Singh", result.PartiesNames)
	assert.Equal(t, "01/02/2020", result.FilingDate)
	assert.Equal(t, "15/03/2024", result.NextHearingDate)
	assert.Equal(t, "Pending", result.CaseStatus)
	assert.NotEmpty(t, result.RawResponse)

	require.Len(t, result.DocumentLinks, 1)
	assert.Equal(t, ts.URL+"/orders/1.pdf", result.DocumentLinks[0].URL)
	assert.Equal(t, DocTypeOrder, result.DocumentLinks[0].Type)
}

func TestSearchCaseFallbackResults(t *testing.T) {
	ts := httptest.NewServer(courtSite(`<html><body><div id="main">
		Case filed on 15/03/2023 and listed next on 20/04/2023.
		Ramesh Gupta vs State
	</div></body></html>`))
	defer ts.Close()

	s := NewScraper(testConfig(ts.URL), testLogger(t))
	result, err := s.SearchCase(context.Background(), validRequest)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "15/03/2023", result.FilingDate)
	assert.Equal(t, "20/04/2023", result.NextHearingDate)
	assert.Equal(t, "Ramesh Gupta vs State", result.PartiesNames)
}

func TestSearchCaseNotFound(t *testing.T) {
	ts := httptest.NewServer(courtSite(`<html><body><h2>No Record Found</h2></body></html>`))
	defer ts.Close()

	s := NewScraper(testConfig(ts.URL), testLogger(t))
	result, err := s.SearchCase(context.Background(), validRequest)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "no record found", notFound.Phrase)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "CRL.A/1234/2023")
	assert.NotEmpty(t, result.RawResponse, "raw response is retained for diagnostics")
	assert.Empty(t, result.PartiesNames)
	assert.Empty(t, result.FilingDate)
	assert.Empty(t, result.CaseStatus)
	assert.Empty(t, result.DocumentLinks)
}

func TestSearchCaseIncompleteExtraction(t *testing.T) {
	ts := httptest.NewServer(courtSite(`<html><body>
		<p>Listing information will be published shortly</p>
	</body></html>`))
	defer ts.Close()

	s := NewScraper(testConfig(ts.URL), testLogger(t))
	result, err := s.SearchCase(context.Background(), validRequest)
	require.NoError(t, err)

	assert.True(t, result.Success, "partial success is reported, never swallowed as failure")
	assert.Equal(t, StatusIncomplete, result.CaseStatus)
	assert.Empty(t, result.PartiesNames)
	assert.Empty(t, result.FilingDate)
}

func TestSearchCaseNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	s := NewScraper(testConfig(ts.URL), testLogger(t))
	result, err := s.SearchCase(context.Background(), validRequest)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "CRL.A/1234/2023")
	assert.Empty(t, result.RawResponse, "network faults carry no partial result")
}

func TestSearchCaseRejectsInvalidRequest(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	s := NewScraper(testConfig(ts.URL), testLogger(t))
	result, err := s.SearchCase(context.Background(), SearchRequest{
		CaseType: "CRL.A", CaseNumber: "12A4", FilingYear: "2023",
	})

	require.Error(t, err)
	assert.False(t, result.Success)
	assert.False(t, called, "invalid requests must not reach the court site")
}
