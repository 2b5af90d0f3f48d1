// Package rss converts RSS 2.0 XML documents into a strongly typed,
// validated in-memory feed model.
//
// The package is pure: it performs no I/O, keeps no state between calls, and
// is safe to use from any number of goroutines. A call to Parse either
// returns one complete, validated *Feed or one typed error; it never returns
// a partial result.
package rss

import "fmt"

// Default dimensions for a channel image when the feed does not specify them.
const (
	DefaultImageWidth  = 88
	DefaultImageHeight = 31
)

// Maximum dimensions a channel image may declare.
const (
	maxImageWidth  = 144
	maxImageHeight = 400
)

// Weekdays recognized in skipDays, in canonical capitalized form.
var weekdayNames = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

// Category identifies a hierarchic location in a taxonomy, per the
// channel- and item-level <category> element.
type Category struct {
	// Value is a forward-slash-separated location in the taxonomy.
	Value string
	// Domain optionally names the taxonomy itself; empty when not given.
	Domain string
}

// Guid is an item's globally unique identifier, per the <guid> element.
// Aggregators may use it to detect new entries.
type Guid struct {
	Value string
	// IsPermaLink reports whether Value is a permalink to the item.
	// Defaults to true per the RSS 2.0 specification.
	IsPermaLink bool
}

// Enclosure describes a media object attached to an item.
type Enclosure struct {
	Url string
	// Length is the size of the enclosure in bytes.
	Length int
	// MediaType is the enclosure's MIME type.
	MediaType string
}

// Validate checks the enclosure's invariants.
func (e *Enclosure) Validate() error {
	if e.Length < 0 {
		return &ValidationError{Invariant: "enclosure length must be a non-negative byte count"}
	}
	return nil
}

// Source identifies the channel an item originated from, per <source>.
type Source struct {
	// Name is the source channel's title.
	Name string
	// Url links to the XMLization of the source channel.
	Url string
}

// Cloud advertises an rssCloud-compatible notification endpoint.
type Cloud struct {
	Domain            string
	Port              int
	Path              string
	RegisterProcedure string
	Protocol          string
}

// Protocol spellings accepted for <cloud>, matching the aliases seen in
// real-world feeds for HTTP-POST, XML-RPC and SOAP 1.1.
var cloudProtocols = map[string]bool{
	"HTTP-POST": true,
	"http-post": true,
	"XML-RPC":   true,
	"xml-rpc":   true,
	"SOAP 1.1":  true,
	"soap":      true,
}

// Validate checks the cloud's invariants.
func (c *Cloud) Validate() error {
	if !cloudProtocols[c.Protocol] {
		return &ValidationError{Invariant: "cloud protocol must be one of HTTP-POST, XML-RPC, or SOAP 1.1"}
	}
	return nil
}

// Image is the channel's branding image, per the <image> element.
type Image struct {
	Url   string
	Title string
	Link  string
	// Width in pixels; defaults to 88 and must not exceed 144.
	Width int
	// Height in pixels; defaults to 31 and must not exceed 400.
	Height int
	// Description is placed in the TITLE attribute of the rendered link;
	// empty when not given.
	Description string
}

// Validate checks the image's invariants.
func (img *Image) Validate() error {
	if img.Width > maxImageWidth {
		return &ValidationError{Invariant: fmt.Sprintf("image width must not exceed %d pixels", maxImageWidth)}
	}
	if img.Height > maxImageHeight {
		return &ValidationError{Invariant: fmt.Sprintf("image height must not exceed %d pixels", maxImageHeight)}
	}
	return nil
}

// TextInput describes the feedback form of the <textInput> element.
// All four fields are required for the element to be kept.
type TextInput struct {
	Title       string
	Description string
	Name        string
	Link        string
}

// Item is one entry in the channel: a story, a synopsis, or a complete
// piece of content. All fields are optional individually, but at least one
// of Title and Description must be present.
type Item struct {
	Title       string
	Link        string
	Description string
	// Author is the email address of the item's author.
	Author     string
	Categories []Category
	// Comments is the URL of the item's comments page.
	Comments  string
	Enclosure *Enclosure
	Guid      *Guid
	// PubDate carries the publication date as raw RFC 822 text; parse it
	// on demand with ParseDate.
	PubDate string
	Source  *Source
}

// Validate checks the item's invariants.
func (it *Item) Validate() error {
	if it.Title == "" && it.Description == "" {
		return &ValidationError{Invariant: "items require at least a title or a description"}
	}
	return nil
}

// Channel holds the feed's metadata and its ordered items.
// Title, Link and Description are required; everything else is enrichment.
type Channel struct {
	Title       string
	Link        string
	Description string

	Language       string
	Copyright      string
	ManagingEditor string
	WebMaster      string
	// PubDate and LastBuildDate carry RFC 822 date text verbatim.
	PubDate       string
	LastBuildDate string
	Categories    []Category
	Generator     string
	Docs          string
	Cloud         *Cloud
	// Ttl is the cache lifetime hint in minutes; nil when not given.
	Ttl       *int
	Image     *Image
	Rating    string
	TextInput *TextInput
	// SkipHours lists up to 24 GMT hours (0-23) aggregators may skip.
	SkipHours []int
	// SkipDays lists up to seven capitalized weekday names.
	SkipDays []string
	Items    []Item
}

// Validate checks the channel's invariants, stopping at the first violation.
func (ch *Channel) Validate() error {
	if len(ch.SkipHours) > 24 {
		return &ValidationError{Invariant: "skipHours may contain at most 24 entries"}
	}
	for _, hour := range ch.SkipHours {
		if hour < 0 || hour > 23 {
			return &ValidationError{Invariant: "each skip hour must be between 0 and 23 inclusive"}
		}
	}
	if len(ch.SkipDays) > 7 {
		return &ValidationError{Invariant: "skipDays may contain at most the seven days of the week"}
	}
	if ch.Ttl != nil && *ch.Ttl < 0 {
		return &ValidationError{Invariant: "ttl must be a non-negative number of minutes"}
	}
	return nil
}

// Feed is the top-level representation of an RSS 2.0 document.
type Feed struct {
	Channel Channel
	// Version is the version attribute of <rss>; must be "2.0".
	Version string
}

// Validate checks the feed's invariants.
func (f *Feed) Validate() error {
	if f.Version != "2.0" {
		return &ValidationError{Invariant: "RSS 2.0 documents must declare version '2.0'"}
	}
	return nil
}
