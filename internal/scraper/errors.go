package scraper

import "fmt"

// NetworkError reports a transport failure, timeout or non-2xx status at
// any HTTP step. It is surfaced to the caller as-is and never retried by
// the engine.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error during %s of %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("network error during %s of %s", e.Op, e.URL)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NotFoundError reports that the court site answered with one of its
// negative-result phrases instead of case data.
type NotFoundError struct {
	Reference string
	Phrase    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("case not found: %s", e.Reference)
}

// ParseError reports an unexpected fault while extracting fields from
// the response markup. The raw page is retained on the result so the
// caller still has the best available diagnostic.
type ParseError struct {
	Reference string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing response for %s: %v", e.Reference, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
