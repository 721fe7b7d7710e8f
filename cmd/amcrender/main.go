// Command amcrender renders an AMC activities feed file as an HTML fragment.
//
//	amcrender [-display short] [-limit 5] [-tz America/New_York] [feed.xml]
//	amcrender -placeholder -chapter Boston -committee Hiking -activity Hiking -limit 5
//
// The feed is read from stdin when no file (or "-") is given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/amc-activities/eventlist/internal/domain"
	"github.com/amc-activities/eventlist/internal/render"
	"github.com/amc-activities/eventlist/internal/service"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type cliArgs struct {
	display     string
	limit       int
	timezone    string
	detailsURL  string
	strict      bool
	placeholder bool
	chapter     string
	committee   string
	activity    string
	file        string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	loc, err := time.LoadLocation(a.timezone)
	if err != nil {
		fmt.Fprintf(stderr, "unknown timezone %q\n", a.timezone)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := service.NewEventListService(
		render.New(render.WithLocation(loc), render.WithDetailsURL(a.detailsURL)),
		logger,
	)
	ctx := context.Background()

	var f domain.Fragment
	if a.placeholder {
		f, err = svc.RenderPlaceholder(ctx, domain.PlaceholderParams{
			Chapter:   a.chapter,
			Committee: a.committee,
			Activity:  a.activity,
			Limit:     a.limit,
		})
	} else {
		var doc []byte
		doc, err = readFeed(a.file, stdin)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		opts := domain.NewRenderOptions(&a.display, &a.limit)
		if a.strict {
			f, err = svc.RenderListStrict(ctx, doc, opts)
		} else {
			f, err = svc.RenderList(ctx, doc, opts)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrInvalidDisplayMode) {
			return exitUsage
		}
		return exitError
	}

	if _, err := io.WriteString(stdout, f.HTML); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("amcrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&a.display, "display", domain.DefaultDisplay, "Display mode: short or long")
	fs.IntVar(&a.limit, "limit", 0, "Stop after this many trips (0 renders all)")
	fs.StringVar(&a.timezone, "tz", "America/New_York", "IANA timezone trip dates are shown in")
	fs.StringVar(&a.detailsURL, "details-url", "", "Base URL trip titles link to")
	fs.BoolVar(&a.strict, "strict", false, "Fail on an unknown display mode instead of printing a message")
	fs.BoolVar(&a.placeholder, "placeholder", false, "Print the browser-loaded placeholder instead of a list")
	fs.StringVar(&a.chapter, "chapter", "", "Placeholder chapter filter")
	fs.StringVar(&a.committee, "committee", "", "Placeholder committee filter")
	fs.StringVar(&a.activity, "activity", "", "Placeholder activity filter")
	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		a.file = rest[0]
	default:
		return cliArgs{}, fmt.Errorf("expected at most one feed file, got %d", len(rest))
	}
	if a.placeholder && a.file != "" {
		return cliArgs{}, errors.New("-placeholder does not take a feed file")
	}
	return a, nil
}

func readFeed(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	return data, nil
}
