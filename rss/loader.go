package rss

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Declaration tokens that get a document rejected before the XML engine
// ever sees it. External-entity and billion-laughs payloads both need one
// of these; refusing them at the string level is independent of whatever
// protections the decoder itself has. The scan is deliberately a literal
// substring match over the case-folded document: a feed that merely
// mentions the token in escaped text is also rejected, which is the safe
// side of that trade.
const (
	doctypeToken = "<!DOCTYPE"
	entityToken  = "<!ENTITY"
)

// loadDocument runs the textual safety gate over the raw document and, when
// it passes, parses the full XML tree. The underlying decoder resolves no
// external entities and fetches nothing.
func loadDocument(document string) (*xmlquery.Node, error) {
	stripped := strings.TrimSpace(document)
	if stripped == "" {
		return nil, &InputError{Reason: "empty document"}
	}

	upper := strings.ToUpper(stripped)
	if strings.Contains(upper, doctypeToken) {
		return nil, &InputError{Reason: "refusing to process feeds that declare a document type"}
	}
	if strings.Contains(upper, entityToken) {
		return nil, &InputError{Reason: "refusing to process feeds that declare custom entities"}
	}

	root, err := xmlquery.Parse(strings.NewReader(document))
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	return root, nil
}
