package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
)

// ScriptPayload is the editor text, sent verbatim.
type ScriptPayload string

// Blank reports whether the payload is empty or whitespace only.
func (p ScriptPayload) Blank() bool {
	return strutil.IsBlank(string(p))
}

// Destination is the configured server URL. Nothing beyond non-emptiness is
// checked locally.
type Destination string

func (d Destination) Empty() bool {
	return d == ""
}

type Dispatcher struct {
	client *http.Client
}

// New returns a Dispatcher using client, or a zero-value client (no timeout)
// when client is nil.
func New(client *http.Client) *Dispatcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Dispatcher{client: client}
}

// Dispatch issues exactly one POST of payload to destination and classifies
// how it went. There are no retries. Caller cancellation is ignored: once
// issued, the request runs until it settles.
func (d *Dispatcher) Dispatch(ctx context.Context, payload ScriptPayload, destination Destination) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("dispatch panicked", "url", string(destination), "panic", r)
			out = Classify(r)
		}
	}()

	out, err := d.post(context.WithoutCancel(ctx), payload, destination)
	if err != nil {
		slog.Debug("dispatch failed", "url", string(destination), "err", err)
		return Classify(err)
	}
	return out
}

func (d *Dispatcher) post(ctx context.Context, payload ScriptPayload, destination Destination) (Outcome, error) {
	url := string(destination)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payload)))
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("Request failed with status code %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	slog.Debug("dispatch settled", "url", url, "status", resp.StatusCode, "body_length", len(body))

	text, ok := renderBody(resp.Header.Get("Content-Type"), body)
	return Success{Body: text, HasBody: ok}, nil
}
