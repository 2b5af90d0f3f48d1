package rss

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Per-element extraction rules. The channel skeleton (title, link,
// description) fails fast; every optional structure degrades to absence
// when any of its required pieces is missing or malformed. A broken <cloud>
// means "no cloud", not a failed parse.

// requireChildText extracts a required child element's text. Absent or
// empty text is a *MissingFieldError naming the element.
func requireChildText(parent *xmlquery.Node, name string) (string, error) {
	value := nodeText(firstDirectChild(parent, name))
	if value == "" {
		return "", &MissingFieldError{Element: name}
	}
	return value, nil
}

// childText extracts an optional child element's text; "" means absent.
// Present-but-empty elements collapse to absence.
func childText(parent *xmlquery.Node, name string) string {
	return nodeText(firstDirectChild(parent, name))
}

// parseIntText parses a strict base-10 integer; the second result is false
// for empty or unparseable text.
func parseIntText(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractCategories collects every <category> child carrying non-empty
// text. Empty ones are skipped, not reported.
func extractCategories(parent *xmlquery.Node) []Category {
	var categories []Category
	for _, cat := range directChildren(parent, "category") {
		value := nodeText(cat)
		if value == "" {
			continue
		}
		domain, _ := attrValue(cat, "domain")
		categories = append(categories, Category{Value: value, Domain: domain})
	}
	return categories
}

// extractCloud builds the channel's <cloud>, requiring all five attributes
// plus a numeric port and a recognized protocol. Anything less drops the
// element.
func extractCloud(parent *xmlquery.Node) *Cloud {
	cloudTag := firstDirectChild(parent, "cloud")
	if cloudTag == nil {
		return nil
	}
	domain, okDomain := attrValue(cloudTag, "domain")
	portText, okPort := attrValue(cloudTag, "port")
	path, okPath := attrValue(cloudTag, "path")
	registerProcedure, okReg := attrValue(cloudTag, "registerProcedure")
	protocol, okProto := attrValue(cloudTag, "protocol")
	if !okDomain || !okPort || !okPath || !okReg || !okProto {
		return nil
	}
	port, ok := parseIntText(portText)
	if !ok {
		return nil
	}
	cloud := &Cloud{
		Domain:            domain,
		Port:              port,
		Path:              path,
		RegisterProcedure: registerProcedure,
		Protocol:          protocol,
	}
	if cloud.Validate() != nil {
		return nil
	}
	return cloud
}

// extractImage builds the channel's <image>. Url, title and link are
// required; width and height fall back to their defaults when absent,
// unparseable or zero. An image breaking the size limits is dropped.
func extractImage(parent *xmlquery.Node) *Image {
	imageTag := firstDirectChild(parent, "image")
	if imageTag == nil {
		return nil
	}
	url := childText(imageTag, "url")
	title := childText(imageTag, "title")
	link := childText(imageTag, "link")
	if url == "" || title == "" || link == "" {
		return nil
	}
	width := DefaultImageWidth
	if w, ok := parseIntText(childText(imageTag, "width")); ok && w != 0 {
		width = w
	}
	height := DefaultImageHeight
	if h, ok := parseIntText(childText(imageTag, "height")); ok && h != 0 {
		height = h
	}
	image := &Image{
		Url:         url,
		Title:       title,
		Link:        link,
		Width:       width,
		Height:      height,
		Description: childText(imageTag, "description"),
	}
	if image.Validate() != nil {
		return nil
	}
	return image
}

// extractTextInput builds the channel's <textInput>; all four sub-elements
// are required or the element is dropped.
func extractTextInput(parent *xmlquery.Node) *TextInput {
	textInputTag := firstDirectChild(parent, "textInput")
	if textInputTag == nil {
		return nil
	}
	title := childText(textInputTag, "title")
	description := childText(textInputTag, "description")
	name := childText(textInputTag, "name")
	link := childText(textInputTag, "link")
	if title == "" || description == "" || name == "" || link == "" {
		return nil
	}
	return &TextInput{Title: title, Description: description, Name: name, Link: link}
}

// extractSkipHours collects the valid <hour> entries under <skipHours>,
// filtering out-of-range and unparseable ones individually.
func extractSkipHours(parent *xmlquery.Node) []int {
	skipHoursTag := firstDirectChild(parent, "skipHours")
	if skipHoursTag == nil {
		return nil
	}
	var hours []int
	for _, hourTag := range directChildren(skipHoursTag, "hour") {
		hour, ok := parseIntText(nodeText(hourTag))
		if !ok || hour < 0 || hour > 23 {
			continue
		}
		hours = append(hours, hour)
	}
	return hours
}

// extractSkipDays collects the recognized <day> entries under <skipDays>.
// Entries are capitalized before the weekday check, so "monday" counts.
func extractSkipDays(parent *xmlquery.Node) []string {
	skipDaysTag := firstDirectChild(parent, "skipDays")
	if skipDaysTag == nil {
		return nil
	}
	var days []string
	for _, dayTag := range directChildren(skipDaysTag, "day") {
		day, ok := canonicalWeekday(nodeText(dayTag))
		if !ok {
			continue
		}
		days = append(days, day)
	}
	return days
}

func canonicalWeekday(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}
	value = strings.ToUpper(value[:1]) + value[1:]
	return value, weekdayNames[value]
}

// extractGuid builds an item's <guid>. The isPermaLink attribute folds
// true/1/yes to true and false/0/no to false; anything else, including an
// absent attribute, keeps the RSS 2.0 default of true.
func extractGuid(parent *xmlquery.Node) *Guid {
	guidTag := firstDirectChild(parent, "guid")
	if guidTag == nil {
		return nil
	}
	value := nodeText(guidTag)
	if value == "" {
		return nil
	}
	isPermaLink := true
	if attr, ok := attrValue(guidTag, "isPermaLink"); ok {
		switch strings.ToLower(attr) {
		case "true", "1", "yes":
			isPermaLink = true
		case "false", "0", "no":
			isPermaLink = false
		}
	}
	return &Guid{Value: value, IsPermaLink: isPermaLink}
}

// extractEnclosure builds an item's <enclosure> from its url, length and
// type attributes; all three are required and length must be a
// non-negative integer.
func extractEnclosure(parent *xmlquery.Node) *Enclosure {
	enclosureTag := firstDirectChild(parent, "enclosure")
	if enclosureTag == nil {
		return nil
	}
	url, okUrl := attrValue(enclosureTag, "url")
	lengthText, okLength := attrValue(enclosureTag, "length")
	mediaType, okType := attrValue(enclosureTag, "type")
	if !okUrl || !okLength || !okType {
		return nil
	}
	length, ok := parseIntText(lengthText)
	if !ok {
		return nil
	}
	enclosure := &Enclosure{Url: url, Length: length, MediaType: mediaType}
	if enclosure.Validate() != nil {
		return nil
	}
	return enclosure
}

// extractSource builds an item's <source> from its url attribute and text
// content; both are required.
func extractSource(parent *xmlquery.Node) *Source {
	sourceTag := firstDirectChild(parent, "source")
	if sourceTag == nil {
		return nil
	}
	url, _ := attrValue(sourceTag, "url")
	name := nodeText(sourceTag)
	if url == "" || name == "" {
		return nil
	}
	return &Source{Name: name, Url: url}
}

// extractItems builds the channel's items in document order. An <item>
// carrying neither title nor description is invalid per RSS 2.0 and is
// silently dropped, matching how consumers tolerate third-party feeds.
func extractItems(parent *xmlquery.Node) []Item {
	var items []Item
	for _, itemTag := range directChildren(parent, "item") {
		title := childText(itemTag, "title")
		description := childText(itemTag, "description")
		if title == "" && description == "" {
			continue
		}
		items = append(items, Item{
			Title:       title,
			Link:        childText(itemTag, "link"),
			Description: description,
			Author:      childText(itemTag, "author"),
			Categories:  extractCategories(itemTag),
			Comments:    childText(itemTag, "comments"),
			Enclosure:   extractEnclosure(itemTag),
			Guid:        extractGuid(itemTag),
			PubDate:     childText(itemTag, "pubDate"),
			Source:      extractSource(itemTag),
		})
	}
	return items
}
