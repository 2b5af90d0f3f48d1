package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"go.uber.org/fx"

	"feedcraft/logic"
	"feedcraft/rss"
	"feedcraft/shared"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

func main() {

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg := shared.LoadConfig()
	logger = initLogger(cfg)
	provideLogger := func() shared.ILogger {
		return logger
	}

	exitCode := 0
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			provideLogger,
			logic.NewFeedScanner,
		),
		fx.Invoke(
			func(scanner logic.IFeedScanner) {
				exitCode = runCommand(scanner, os.Args[1], os.Args[2:])
			},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	if app.Err() != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func initLogger(cfg *shared.Config) *log.Logger {

	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
			log.Fatal(msg)
		}
		w = io.MultiWriter(os.Stderr, logFile)
	}

	logger := log.New(w)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}

	return logger
}

func runCommand(scanner logic.IFeedScanner, command string, args []string) int {
	switch command {
	case "parse":
		if len(args) != 1 {
			printUsage()
			return 2
		}
		return cmdParse(args[0])
	case "parse-dir":
		if len(args) != 1 {
			printUsage()
			return 2
		}
		return cmdParseDir(scanner, args[0])
	default:
		printUsage()
		return 2
	}
}

// cmdParse parses one feed file and prints the channel title plus one line
// per item with its publish date text and title.
func cmdParse(feedPath string) int {

	content, err := os.ReadFile(feedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read '%s': %v\n", feedPath, err)
		return 1
	}
	if !logic.IsAnyRss(string(content)) {
		fmt.Fprintln(os.Stderr, "The provided file does not appear to be a valid RSS feed.")
		return 1
	}

	feed, err := rss.Parse(string(content))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("Feed Title: %s\n", feed.Channel.Title)
	fmt.Println("Items:")
	for _, item := range feed.Channel.Items {
		fmt.Printf("- %s: %s\n", item.PubDate, item.Title)
	}
	return 0
}

func cmdParseDir(scanner logic.IFeedScanner, dirPath string) int {

	report, err := scanner.ScanDir(dirPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Infof("Scanned %d files: %d parsed, %d skipped, %d failed",
		report.Scanned, report.Parsed, report.Skipped, report.Failed)
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  feedcraft parse <feed-file>")
	fmt.Fprintln(os.Stderr, "  feedcraft parse-dir <feed-dir>")
}
