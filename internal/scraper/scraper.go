package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/courtlens/casefetch/internal/config"
	"github.com/courtlens/casefetch/pkg/logger"
)

// Scraper runs court case searches. It holds no state across calls;
// every invocation owns a fresh session, so concurrent searches cannot
// contaminate each other's tokens.
type Scraper struct {
	cfg        *config.Config
	logger     *logger.Logger
	classifier *Classifier
	fetcher    *Fetcher
}

// NewScraper creates a scraper instance
func NewScraper(cfg *config.Config, log *logger.Logger) *Scraper {
	return &Scraper{
		cfg:        cfg,
		logger:     log,
		classifier: NewClassifier(cfg.NotFoundPhrases),
		fetcher:    NewFetcher(cfg.UserAgent, cfg.DocumentTimeout, log),
	}
}

// SearchCase performs one full search: token fetch, submission,
// classification, structured then fallback extraction, link collection.
// The returned result is always usable; the error, when non-nil, is one
// of NetworkError, NotFoundError or ParseError so callers can
// distinguish failure kinds without string inspection.
func (s *Scraper) SearchCase(ctx context.Context, req SearchRequest) (*CaseResult, error) {
	if err := req.Validate(); err != nil {
		return &CaseResult{Success: false, Error: fmt.Sprintf("invalid request %s: %v", req.Reference(), err)}, err
	}

	s.logger.Info("searching case", "reference", req.Reference())

	session, err := NewSession(s.cfg.CourtBaseURL, s.cfg.SearchURL(), s.cfg.UserAgent, s.cfg.ScraperTimeout)
	if err != nil {
		return &CaseResult{Success: false, Error: fmt.Sprintf("%v: %s", err, req.Reference())}, err
	}

	tokens, err := session.AcquireSubmissionContext(ctx)
	if err != nil {
		s.logger.Error("token fetch failed", "reference", req.Reference(), "error", err)
		return &CaseResult{Success: false, Error: fmt.Sprintf("Network error: %v (%s)", err, req.Reference())}, err
	}
	s.logger.Debug("acquired form tokens", "reference", req.Reference(), "count", len(tokens))

	raw, err := session.SubmitSearch(ctx, tokens, req)
	if err != nil {
		s.logger.Error("search submit failed", "reference", req.Reference(), "error", err)
		return &CaseResult{Success: false, Error: fmt.Sprintf("Network error: %v (%s)", err, req.Reference())}, err
	}

	result, err := s.parseResponse(raw, session, req)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			s.logger.Info("case not found", "reference", req.Reference(), "phrase", notFound.Phrase)
		} else {
			s.logger.Error("failed to parse response", "reference", req.Reference(), "error", err)
		}
		return result, err
	}

	s.logger.Info("case parsed",
		"reference", req.Reference(),
		"status", result.CaseStatus,
		"documents", len(result.DocumentLinks),
	)
	return result, nil
}

// parseResponse turns the raw search response into a CaseResult. Any
// panic out of the extraction machinery is converted into a ParseError
// with the raw page preserved; a broken parse must never cost the
// caller the response it could still inspect by hand.
func (s *Scraper) parseResponse(raw []byte, session *Session, req SearchRequest) (result *CaseResult, err error) {
	rawHTML := string(raw)

	defer func() {
		if r := recover(); r != nil {
			err = &ParseError{Reference: req.Reference(), Err: fmt.Errorf("%v", r)}
			result = &CaseResult{Success: false, Error: err.Error(), RawResponse: rawHTML}
		}
	}()

	doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if parseErr != nil {
		err = &ParseError{Reference: req.Reference(), Err: parseErr}
		return &CaseResult{Success: false, Error: err.Error(), RawResponse: rawHTML}, err
	}

	if phrase := s.classifier.Match(doc); phrase != "" {
		err = &NotFoundError{Reference: req.Reference(), Phrase: phrase}
		return &CaseResult{
			Success:     false,
			Error:       fmt.Sprintf("Case not found: %s", req.Reference()),
			RawResponse: rawHTML,
		}, err
	}

	partial := ExtractStructured(doc)
	if NeedsFallback(partial) {
		partial = ExtractFallback(doc, partial)
	}

	result = &CaseResult{
		Success:         true,
		RawResponse:     rawHTML,
		PartiesNames:    partial.PartiesNames,
		FilingDate:      partial.FilingDate,
		NextHearingDate: partial.NextHearingDate,
		CaseStatus:      partial.CaseStatus,
		DocumentLinks:   CollectDocumentLinks(doc, session.BaseURL()),
	}

	if result.PartiesNames == "" && result.FilingDate == "" && result.CaseStatus == "" {
		result.CaseStatus = StatusIncomplete
	}

	return result, nil
}

// FetchDocument downloads a previously discovered document by URL.
func (s *Scraper) FetchDocument(ctx context.Context, docURL string) ([]byte, error) {
	return s.fetcher.FetchDocument(ctx, docURL)
}
