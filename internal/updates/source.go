package updates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 4 << 20

// Source yields updates from one location.
type Source interface {
	Fetch(ctx context.Context) ([]Update, error)
}

// DiscordSource reads recent messages from a Discord channel endpoint.
type DiscordSource struct {
	URL    string
	Client *http.Client
	Max    int // Messages mapped, 0 for all
}

// Fetch requests the channel and maps the first Max messages.
func (s *DiscordSource) Fetch(ctx context.Context) ([]Update, error) {
	body, err := get(ctx, s.Client, s.URL)
	if err != nil {
		return nil, fmt.Errorf("updates: discord: %w", err)
	}

	messages, err := decodeDiscord(body)
	if err != nil {
		return nil, fmt.Errorf("updates: discord: %w", err)
	}

	if s.Max > 0 && len(messages) > s.Max {
		messages = messages[:s.Max]
	}
	out := make([]Update, 0, len(messages))
	for _, m := range messages {
		out = append(out, fromDiscord(m))
	}
	return out, nil
}

func decodeDiscord(body []byte) ([]discordMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var messages []discordMessage
		if err := json.Unmarshal(trimmed, &messages); err != nil {
			return nil, fmt.Errorf("decode messages: %w", err)
		}
		return messages, nil
	}

	var env discordEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return env.Messages, nil
}

// DocumentSource reads a {"updates": [...]} document from an http(s) URL
// or a local file path.
type DocumentSource struct {
	Location string
	Client   *http.Client
}

// Fetch loads and decodes the document.
func (s *DocumentSource) Fetch(ctx context.Context) ([]Update, error) {
	var (
		body []byte
		err  error
	)
	if isRemote(s.Location) {
		body, err = get(ctx, s.Client, s.Location)
	} else {
		body, err = os.ReadFile(s.Location)
	}
	if err != nil {
		return nil, fmt.Errorf("updates: document %s: %w", s.Location, err)
	}

	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("updates: document %s: decode: %w", s.Location, err)
	}

	out := make([]Update, 0, len(doc.Updates))
	for _, u := range doc.Updates {
		out = append(out, normalize(u))
	}
	return out, nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// get performs a GET and treats any non-2xx status as an error.
func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
