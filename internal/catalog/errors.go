package catalog

import "fmt"

// FetchError reports that the remote catalog could not be retrieved.
// StatusCode is zero when the request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching plugin catalog from %s: HTTP status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching plugin catalog from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a catalog document that is not valid JSON or does not
// match the catalog shape. Source names where the document came from.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing plugin catalog from %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LookupError reports a plugin identifier missing from the catalog.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("plugin %q not found in catalog", e.ID)
}
