package rss

import "fmt"

// InputError reports input that was rejected before any XML parsing was
// attempted: empty or whitespace-only text, or text carrying DOCTYPE or
// custom-entity declarations.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "rss: " + e.Reason
}

// SyntaxError reports a document that is not well-formed XML.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return "rss: malformed xml: " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports an absent structurally required element:
// <rss>, <channel>, or one of the channel's title, link and description.
type MissingFieldError struct {
	Element string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("rss: missing required <%s> element", e.Element)
}

// ValidationError reports a built model that violates a documented
// invariant.
type ValidationError struct {
	Invariant string
}

func (e *ValidationError) Error() string {
	return "rss: invalid feed: " + e.Invariant
}

// DateError reports a date string that does not conform to the RFC 822
// grammar ParseDate accepts.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("rss: invalid date string %q", e.Value)
}
