package updates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loadscreen/internal/config"
)

var (
	// ErrNoUpdates means a source answered with an empty list.
	ErrNoUpdates = errors.New("updates: no updates available")
	// ErrUnavailable means every configured source failed.
	ErrUnavailable = errors.New("updates: all sources failed")
)

// Status is a stage of a feed load, shown next to the spinner.
type Status int

const (
	StatusLoading Status = iota
	StatusConnecting
	StatusFallback
	StatusRetrieving
	StatusReady
	StatusFailed
)

// Message returns the user-facing text for the stage.
func (s Status) Message() string {
	switch s {
	case StatusLoading:
		return "Loading updates..."
	case StatusConnecting:
		return "Connecting to server..."
	case StatusFallback:
		return "Connection failed. Trying alternate source..."
	case StatusRetrieving:
		return "Retrieving updates..."
	case StatusReady:
		return ""
	default:
		return "Could not load server updates. Please try again later."
	}
}

// ErrorMessage returns the user-facing text for a Load error.
func ErrorMessage(err error) string {
	if errors.Is(err, ErrNoUpdates) {
		return "No updates available at this time."
	}
	return StatusFailed.Message()
}

// Feed loads updates from a primary source with a delayed fallback.
type Feed struct {
	primary  Source // nil when no Discord endpoint is configured
	fallback Source
	max      int
	delay    time.Duration
	log      *log.Logger
}

// NewFeed builds a feed from configuration. A nil client gets one with the
// configured request timeout.
func NewFeed(cfg config.UpdatesConfig, client *http.Client, logger *log.Logger) *Feed {
	if client == nil {
		client = &http.Client{Timeout: cfg.RequestTimeout}
	}

	var primary, fallback Source
	if cfg.DiscordWebhookURL != "" {
		primary = &DiscordSource{URL: cfg.DiscordWebhookURL, Client: client, Max: cfg.MaxUpdates}
	}
	if cfg.FallbackURL != "" {
		fallback = &DocumentSource{Location: cfg.FallbackURL, Client: client}
	}
	return NewFeedFromSources(primary, fallback, cfg.MaxUpdates, cfg.FallbackDelay, logger)
}

// NewFeedFromSources builds a feed around arbitrary sources.
func NewFeedFromSources(primary, fallback Source, limit int, delay time.Duration, logger *log.Logger) *Feed {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Feed{primary: primary, fallback: fallback, max: limit, delay: delay, log: logger}
}

// HasPrimary reports whether a primary source is configured.
func (f *Feed) HasPrimary() bool { return f.primary != nil }

// FallbackDelay is the pause between a failed primary and the fallback.
func (f *Feed) FallbackDelay() time.Duration { return f.delay }

// FetchPrimary queries the primary source only.
func (f *Feed) FetchPrimary(ctx context.Context) ([]Update, error) {
	if f.primary == nil {
		return nil, fmt.Errorf("%w: no primary source", ErrUnavailable)
	}
	ups, err := f.primary.Fetch(ctx)
	if err != nil {
		f.log.Warn("primary update source failed", "err", err)
		return nil, err
	}
	return f.finish(ups)
}

// FetchFallback queries the fallback source only.
func (f *Feed) FetchFallback(ctx context.Context) ([]Update, error) {
	if f.fallback == nil {
		return nil, fmt.Errorf("%w: no fallback source", ErrUnavailable)
	}
	ups, err := f.fallback.Fetch(ctx)
	if err != nil {
		f.log.Error("fallback update source failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return f.finish(ups)
}

func (f *Feed) finish(ups []Update) ([]Update, error) {
	if len(ups) == 0 {
		return nil, ErrNoUpdates
	}
	if f.max > 0 && len(ups) > f.max {
		ups = ups[:f.max]
	}
	return ups, nil
}

// Load runs the whole sequence: primary, then after the fallback delay the
// fallback. onStatus, if non-nil, is called at every stage. An empty answer
// from the primary is final and does not trigger the fallback.
func (f *Feed) Load(ctx context.Context, onStatus func(Status)) ([]Update, error) {
	report := func(s Status) {
		if onStatus != nil {
			onStatus(s)
		}
	}

	report(StatusLoading)

	if f.primary != nil {
		report(StatusConnecting)
		ups, err := f.FetchPrimary(ctx)
		if err == nil || errors.Is(err, ErrNoUpdates) {
			return f.done(ups, err, report)
		}

		report(StatusFallback)
		select {
		case <-ctx.Done():
			report(StatusFailed)
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}

	report(StatusRetrieving)
	ups, err := f.FetchFallback(ctx)
	return f.done(ups, err, report)
}

func (f *Feed) done(ups []Update, err error, report func(Status)) ([]Update, error) {
	if err != nil {
		report(StatusFailed)
		return nil, err
	}
	f.log.Debug("updates loaded", "count", len(ups))
	report(StatusReady)
	return ups, nil
}
