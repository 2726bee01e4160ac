package watch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Notifier delivers one notification. Implementations must be safe for
// repeated calls; the checker already handles de-duplication.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// LogNotifier writes notifications to a writer, stderr by default.
type LogNotifier struct {
	out io.Writer
}

// NewLogNotifier creates a LogNotifier. A nil writer means stderr.
func NewLogNotifier(out io.Writer) *LogNotifier {
	if out == nil {
		out = os.Stderr
	}
	return &LogNotifier{out: out}
}

func (n *LogNotifier) Notify(ctx context.Context, title, body string) error {
	_, err := fmt.Fprintf(n.out, "[notification] %s: %s\n", title, body)
	return err
}

// WebhookNotifier POSTs notifications as JSON to a configured URL, so
// a user can bridge checks into Discord, ntfy or similar.
type WebhookNotifier struct {
	client *http.Client
	url    string
}

// NewWebhookNotifier creates a webhook notifier. A nil client gets a
// short-timeout default.
func NewWebhookNotifier(client *http.Client, url string) *WebhookNotifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WebhookNotifier{client: client, url: url}
}

func (n *WebhookNotifier) Notify(ctx context.Context, title, body string) error {
	payload, err := json.Marshal(map[string]string{"title": title, "body": body})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook answered %d", resp.StatusCode)
	}
	return nil
}
