package rss

// Parse converts an RSS 2.0 document into a validated Feed.
//
// The pipeline is linear: defensive load, locate <rss> and <channel>,
// extract fields bottom-up, construct the model, validate the whole tree.
// Any failure aborts the call with one of the typed errors in this package
// (*InputError, *SyntaxError, *MissingFieldError, *ValidationError); there
// are no partial results.
func Parse(document string) (*Feed, error) {
	root, err := loadDocument(document)
	if err != nil {
		return nil, err
	}

	rssTag := firstDescendant(root, "rss")
	if rssTag == nil {
		return nil, &MissingFieldError{Element: "rss"}
	}

	version := "2.0"
	if v, ok := attrValue(rssTag, "version"); ok && v != "" {
		version = v
	}

	channelTag := firstDirectChild(rssTag, "channel")
	if channelTag == nil {
		return nil, &MissingFieldError{Element: "channel"}
	}

	title, err := requireChildText(channelTag, "title")
	if err != nil {
		return nil, err
	}
	link, err := requireChildText(channelTag, "link")
	if err != nil {
		return nil, err
	}
	description, err := requireChildText(channelTag, "description")
	if err != nil {
		return nil, err
	}

	var ttl *int
	if n, ok := parseIntText(childText(channelTag, "ttl")); ok {
		ttl = &n
	}

	channel := Channel{
		Title:          title,
		Link:           link,
		Description:    description,
		Language:       childText(channelTag, "language"),
		Copyright:      childText(channelTag, "copyright"),
		ManagingEditor: childText(channelTag, "managingEditor"),
		WebMaster:      childText(channelTag, "webMaster"),
		PubDate:        childText(channelTag, "pubDate"),
		LastBuildDate:  childText(channelTag, "lastBuildDate"),
		Categories:     extractCategories(channelTag),
		Generator:      childText(channelTag, "generator"),
		Docs:           childText(channelTag, "docs"),
		Cloud:          extractCloud(channelTag),
		Ttl:            ttl,
		Image:          extractImage(channelTag),
		Rating:         childText(channelTag, "rating"),
		TextInput:      extractTextInput(channelTag),
		SkipHours:      extractSkipHours(channelTag),
		SkipDays:       extractSkipDays(channelTag),
		Items:          extractItems(channelTag),
	}

	feed := &Feed{Channel: channel, Version: version}

	// Defense in depth: re-check the assembled tree independent of the
	// extraction-time checks, stopping at the first violation.
	if err := feed.Channel.Validate(); err != nil {
		return nil, err
	}
	for i := range feed.Channel.Items {
		if err := feed.Channel.Items[i].Validate(); err != nil {
			return nil, err
		}
	}
	if err := feed.Validate(); err != nil {
		return nil, err
	}
	return feed, nil
}
