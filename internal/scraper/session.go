package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Session owns the HTTP identity for one search invocation. The court
// site binds hidden form tokens to the session cookie, so the token
// fetch and the submission must share the same jar. Sessions are never
// shared across concurrent invocations.
type Session struct {
	baseURL   *url.URL
	searchURL string
	http      *resty.Client
}

// NewSession builds a session client with a fresh cookie jar, the
// configured user agent and an explicit request timeout.
func NewSession(baseURL, searchURL, userAgent string, timeout time.Duration) (*Session, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid court base URL %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	client := resty.New()
	client.SetCookieJar(jar)
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(timeout)

	return &Session{
		baseURL:   base,
		searchURL: searchURL,
		http:      client,
	}, nil
}

// BaseURL is the root against which relative document links resolve.
func (s *Session) BaseURL() *url.URL { return s.baseURL }

// AcquireSubmissionContext fetches the search page and harvests every
// hidden input of its primary form (anti-forgery tokens, viewstate and
// the like). An absent form or an empty token set is not an error; some
// sites require nothing beyond the search fields.
func (s *Session) AcquireSubmissionContext(ctx context.Context) (FormContext, error) {
	res, err := s.http.R().SetContext(ctx).Get(s.searchURL)
	if err != nil {
		return nil, &NetworkError{Op: "token fetch", URL: s.searchURL, Err: err}
	}
	if res.IsError() {
		return nil, &NetworkError{Op: "token fetch", URL: s.searchURL,
			Err: fmt.Errorf("unexpected status %s", res.Status())}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, &NetworkError{Op: "token fetch", URL: s.searchURL,
			Err: fmt.Errorf("unreadable search page: %w", err)}
	}

	tokens := FormContext{}
	doc.Find("form").First().Find("input[type=hidden]").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok || name == "" {
			return
		}
		// last-wins on duplicate names
		tokens[name] = sel.AttrOr("value", "")
	})

	return tokens, nil
}

// SubmitSearch merges the search fields over the harvested tokens
// (caller fields win on collision) and posts the form on the same
// session. Returns the raw response markup.
func (s *Session) SubmitSearch(ctx context.Context, tokens FormContext, req SearchRequest) ([]byte, error) {
	form := map[string]string{}
	for name, value := range tokens {
		form[name] = value
	}
	form["case_type"] = req.CaseType
	form["case_no"] = req.CaseNumber
	form["case_year"] = req.FilingYear
	form["submit"] = "Search"

	res, err := s.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(s.searchURL)
	if err != nil {
		return nil, &NetworkError{Op: "search submit", URL: s.searchURL, Err: err}
	}
	if res.IsError() {
		return nil, &NetworkError{Op: "search submit", URL: s.searchURL,
			Err: fmt.Errorf("unexpected status %s", res.Status())}
	}

	return res.Body(), nil
}
