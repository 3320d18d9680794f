package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/courtlens/casefetch/pkg/logger"
)

// Fetcher downloads documents discovered by link collection, typically
// keyed off a previously persisted DocumentLink URL.
type Fetcher struct {
	http   *resty.Client
	logger *logger.Logger
}

// NewFetcher builds a document fetcher with a bounded timeout. Failed
// fetches are reported immediately; document availability is often
// transient and retry policy belongs to the caller.
func NewFetcher(userAgent string, timeout time.Duration, log *logger.Logger) *Fetcher {
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(timeout)

	return &Fetcher{http: client, logger: log}
}

// FetchDocument downloads a document by URL. A response whose declared
// content type lacks "pdf" is logged, not rejected, when the URL itself
// does not end in ".pdf" — type trust stays with the caller.
func (f *Fetcher) FetchDocument(ctx context.Context, docURL string) ([]byte, error) {
	res, err := f.http.R().SetContext(ctx).Get(docURL)
	if err != nil {
		return nil, &NetworkError{Op: "document fetch", URL: docURL, Err: err}
	}
	if res.IsError() {
		return nil, &NetworkError{Op: "document fetch", URL: docURL,
			Err: fmt.Errorf("unexpected status %s", res.Status())}
	}

	contentType := strings.ToLower(res.Header().Get("Content-Type"))
	if !strings.Contains(contentType, "pdf") && !strings.HasSuffix(strings.ToLower(docURL), ".pdf") {
		f.logger.Warn("URL may not be a PDF", "url", docURL, "content_type", contentType)
	}

	return res.Body(), nil
}
