package logic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"feedcraft/rss"
	"feedcraft/shared"
)

type IFeedScanner interface {
	ScanDir(dirPath string) (*ScanReport, error)
}

// ScanReport summarizes one directory scan.
type ScanReport struct {
	Scanned int // regular files examined
	Parsed  int // files parsed into a valid feed
	Skipped int // files that failed the coarse <rss pre-filter
	Failed  int // files that failed to read or parse
}

type feedScanner struct {
	logger shared.ILogger
	out    io.Writer
}

func NewFeedScanner(logger shared.ILogger) IFeedScanner {
	return &feedScanner{
		logger: logger,
		out:    os.Stdout,
	}
}

// IsAnyRss is the coarse pre-filter applied before handing a document to
// the parser: anything without an <rss opening is not worth the attempt.
func IsAnyRss(feed string) bool {
	return strings.Contains(feed, "<rss")
}

// ScanDir parses every feed file in dirPath, in name order, and writes a
// summary per feed. A file that fails to read, filter or parse is logged
// and skipped; the batch never aborts.
func (fs *feedScanner) ScanDir(dirPath string) (*ScanReport, error) {

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed directory '%s': %w", dirPath, err)
	}

	report := &ScanReport{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		report.Scanned++
		ix := report.Scanned

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			fs.logger.Errorf("[%d] Failed to read %s: %v", ix, entry.Name(), err)
			report.Failed++
			continue
		}
		if !IsAnyRss(string(content)) {
			fs.logger.Warnf("[%d] %s: not a valid RSS feed", ix, entry.Name())
			report.Skipped++
			continue
		}

		feed, err := rss.Parse(string(content))
		if err != nil {
			fs.logger.Errorf("[%d] Error parsing %s: %v", ix, entry.Name(), err)
			report.Failed++
			continue
		}

		fs.logger.Debugf("[%d] %s: %s", ix, entry.Name(),
			shared.TruncateWithEllipsis(feed.Channel.Description, shared.MaxSummaryLen))
		fs.writeFeed(ix, entry.Name(), feed)
		report.Parsed++
	}
	return report, nil
}

func (fs *feedScanner) writeFeed(ix int, fileName string, feed *rss.Feed) {
	fmt.Fprintf(fs.out, "\n\n-------\n\n[%d]\nFeed Title: %s (from %s)\n", ix, feed.Channel.Title, fileName)
	fmt.Fprintln(fs.out, "Items:")
	for _, item := range feed.Channel.Items {
		fmt.Fprintf(fs.out, "- %s: %s\n", item.PubDate, item.Title)
	}
}
