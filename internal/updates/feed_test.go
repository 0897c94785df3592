package updates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/loadscreen/internal/config"
)

const discordBody = `{"messages": [
	{"content": "**Server update** v2\nNew cars", "timestamp": "2025-05-12T18:00:00Z",
	 "author": {"username": "Naor"}, "attachments": [{"url": "https://cdn/img.png"}]},
	{"content": "Bug fixes", "timestamp": "2025-05-10T18:00:00Z"},
	{"content": "Event tonight", "timestamp": "2025-05-09T18:00:00Z"},
	{"content": "News", "timestamp": "2025-05-08T18:00:00Z"}
]}`

const documentBody = `{"updates": [
	{"type": "event", "title": "Car meet", "content": "Saturday", "date": "2025-04-01", "author": "Staff"},
	{"content": "Important: maintenance", "date": "2025-03-01"}
]}`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDiscordSourceMapsMessages(t *testing.T) {
	srv := serve(t, http.StatusOK, discordBody)
	src := &DiscordSource{URL: srv.URL, Client: srv.Client(), Max: 3}

	ups, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, ups, 3)

	first := ups[0]
	assert.Equal(t, TypeUpdate, first.Type)
	assert.Equal(t, "Server update v2", first.Title)
	assert.Equal(t, "Naor", first.Author)
	assert.Equal(t, []string{"https://cdn/img.png"}, first.Images)
	assert.Equal(t, "May 12, 2025", FormatDate(first.Date))

	assert.Equal(t, DefaultAuthor, ups[1].Author)
	assert.Equal(t, TypeFix, ups[1].Type)
	assert.Equal(t, TypeEvent, ups[2].Type)
}

func TestDiscordSourceAcceptsBareArray(t *testing.T) {
	srv := serve(t, http.StatusOK, `[{"content": "hello", "timestamp": "2025-01-01T00:00:00Z"}]`)
	src := &DiscordSource{URL: srv.URL, Client: srv.Client()}

	ups, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, ups, 1)
	assert.Equal(t, "hello", ups[0].Title)
}

func TestDiscordSourceHTTPError(t *testing.T) {
	srv := serve(t, http.StatusForbidden, `{"message": "no"}`)
	src := &DiscordSource{URL: srv.URL, Client: srv.Client()}

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error 403")
}

func TestDocumentSourceFromFileAndURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "updates.json")
	require.NoError(t, os.WriteFile(path, []byte(documentBody), 0o644))

	ups, err := (&DocumentSource{Location: path}).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, ups, 2)
	assert.Equal(t, "Car meet", ups[0].Title)
	assert.Equal(t, TypeAnnouncement, ups[1].Type, "missing type is detected")
	assert.Equal(t, "Important: maintenance", ups[1].Title, "missing title is extracted")

	srv := serve(t, http.StatusOK, documentBody)
	ups, err = (&DocumentSource{Location: srv.URL, Client: srv.Client()}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, ups, 2)
}

type stubSource struct {
	ups   []Update
	err   error
	calls int
}

func (s *stubSource) Fetch(context.Context) ([]Update, error) {
	s.calls++
	return s.ups, s.err
}

func TestFeedPrimarySuccessSkipsFallback(t *testing.T) {
	primary := &stubSource{ups: []Update{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}}}
	fallback := &stubSource{ups: []Update{{Title: "z"}}}
	feed := NewFeedFromSources(primary, fallback, 3, time.Millisecond, nil)

	var stages []Status
	ups, err := feed.Load(context.Background(), func(s Status) { stages = append(stages, s) })

	require.NoError(t, err)
	assert.Len(t, ups, 3, "truncated to max")
	assert.Equal(t, 0, fallback.calls)
	assert.Equal(t, []Status{StatusLoading, StatusConnecting, StatusReady}, stages)
}

func TestFeedFallsBackAfterDelay(t *testing.T) {
	primary := &stubSource{err: errors.New("boom")}
	fallback := &stubSource{ups: []Update{{Title: "local"}}}
	feed := NewFeedFromSources(primary, fallback, 3, 20*time.Millisecond, nil)

	var stages []Status
	start := time.Now()
	ups, err := feed.Load(context.Background(), func(s Status) { stages = append(stages, s) })

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, "local", ups[0].Title)
	assert.Equal(t, []Status{StatusLoading, StatusConnecting, StatusFallback, StatusRetrieving, StatusReady}, stages)
}

func TestFeedEmptyPrimaryIsFinal(t *testing.T) {
	primary := &stubSource{}
	fallback := &stubSource{ups: []Update{{Title: "local"}}}
	feed := NewFeedFromSources(primary, fallback, 3, time.Millisecond, nil)

	_, err := feed.Load(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoUpdates)
	assert.Equal(t, 0, fallback.calls)
	assert.Equal(t, "No updates available at this time.", ErrorMessage(err))
}

func TestFeedBothSourcesFail(t *testing.T) {
	feed := NewFeedFromSources(&stubSource{err: errors.New("a")}, &stubSource{err: errors.New("b")}, 3, time.Millisecond, nil)

	var last Status
	_, err := feed.Load(context.Background(), func(s Status) { last = s })

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, StatusFailed, last)
	assert.Equal(t, "Could not load server updates. Please try again later.", ErrorMessage(err))
}

func TestFeedWithoutPrimaryGoesStraightToFallback(t *testing.T) {
	fallback := &stubSource{ups: []Update{{Title: "local"}}}
	feed := NewFeedFromSources(nil, fallback, 3, time.Hour, nil)

	var stages []Status
	ups, err := feed.Load(context.Background(), func(s Status) { stages = append(stages, s) })

	require.NoError(t, err)
	assert.Len(t, ups, 1)
	assert.False(t, feed.HasPrimary())
	assert.Equal(t, []Status{StatusLoading, StatusRetrieving, StatusReady}, stages)
}

func TestFeedLoadHonoursCancellation(t *testing.T) {
	feed := NewFeedFromSources(&stubSource{err: errors.New("down")}, &stubSource{}, 3, time.Hour, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := feed.Load(ctx, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewFeedFromConfig(t *testing.T) {
	srv := serve(t, http.StatusOK, discordBody)
	cfg := config.DefaultUpdatesConfig()
	cfg.DiscordWebhookURL = srv.URL
	cfg.FallbackURL = filepath.Join(t.TempDir(), "missing.json")

	feed := NewFeed(cfg, srv.Client(), nil)
	require.True(t, feed.HasPrimary())

	ups, err := feed.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, ups, cfg.MaxUpdates)
}
