package comfy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/wedgerun/pkg/ports"
)

// Client talks to a ComfyUI-compatible server over HTTP. Submission
// posts the prompt graph; completion is observed by polling the job's
// history until a terminal entry appears.
type Client struct {
	baseURL  string
	clientID string
	httpc    *http.Client
	poll     time.Duration
	logger   *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpc = h }
}

// WithPollInterval sets the history polling interval.
func WithPollInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.poll = d }
}

// WithLogger sets a structured logger for request-level diagnostics.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NormalizeBaseURL prefixes bare host:port addresses with http://.
func NormalizeBaseURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "http://" + raw
}

// NewClient creates a client for the given base URL (scheme optional).
// Every client gets a fresh UUID client ID, which the server uses to
// scope queue events.
func NewClient(rawURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(NormalizeBaseURL(rawURL), "/"),
		clientID: uuid.NewString(),
		httpc:    &http.Client{Timeout: 30 * time.Second},
		poll:     time.Second,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized server address.
func (c *Client) BaseURL() string { return c.baseURL }

// ClientID returns the UUID identifying this client to the server.
func (c *Client) ClientID() string { return c.clientID }

// Submit queues the workflow and returns the server's prompt ID.
func (c *Client) Submit(ctx context.Context, tpl ports.Template) (string, error) {
	wf, ok := tpl.(*Workflow)
	if !ok {
		return "", fmt.Errorf("comfy: template must be a *comfy.Workflow, got %T", tpl)
	}

	payload := map[string]any{
		"prompt":    wf.nodes,
		"client_id": c.clientID,
	}
	if len(wf.extra) > 0 {
		payload["extra_data"] = wf.extra
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("comfy: encode prompt: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/prompt", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("comfy: submit prompt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("comfy: submit prompt: %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var queued struct {
		PromptID string `json:"prompt_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&queued); err != nil {
		return "", fmt.Errorf("comfy: decode prompt response: %w", err)
	}
	if queued.PromptID == "" {
		return "", fmt.Errorf("comfy: server did not return a prompt_id")
	}
	return queued.PromptID, nil
}

type historyImage struct {
	Filename  string `json:"filename"`
	Subfolder string `json:"subfolder"`
	Type      string `json:"type"`
}

type historyOutput struct {
	Images []historyImage `json:"images"`
}

type historyStatus struct {
	Completed bool              `json:"completed"`
	StatusStr string            `json:"status_str"`
	Messages  []json.RawMessage `json:"messages"`
}

type historyEntry struct {
	Outputs map[string]historyOutput `json:"outputs"`
	Status  historyStatus            `json:"status"`
}

// Await polls the job's history until it reaches a terminal state, then
// returns its result record. The poll loop honors context cancellation.
func (c *Client) Await(ctx context.Context, jobID string) (*ports.Result, error) {
	for {
		entry, found, err := c.history(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if found {
			if entry.Status.StatusStr == "error" {
				return nil, fmt.Errorf("comfy: job %s failed on the server", jobID)
			}
			if entry.Status.Completed || len(entry.Outputs) > 0 {
				return buildResult(jobID, entry), nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.poll):
		}
	}
}

func (c *Client) history(ctx context.Context, jobID string) (historyEntry, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history/"+jobID, nil)
	if err != nil {
		return historyEntry{}, false, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return historyEntry{}, false, fmt.Errorf("comfy: fetch history: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return historyEntry{}, false, fmt.Errorf("comfy: fetch history: %s", resp.Status)
	}

	var entries map[string]historyEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return historyEntry{}, false, fmt.Errorf("comfy: decode history: %w", err)
	}
	entry, found := entries[jobID]
	return entry, found, nil
}

func buildResult(jobID string, entry historyEntry) *ports.Result {
	res := &ports.Result{JobID: jobID}

	nodeIDs := make([]string, 0, len(entry.Outputs))
	for id := range entry.Outputs {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)
	for _, id := range nodeIDs {
		for _, img := range entry.Outputs[id].Images {
			res.Artifacts = append(res.Artifacts, ports.Artifact{
				Filename:  img.Filename,
				Subfolder: img.Subfolder,
				Kind:      img.Type,
			})
		}
	}

	started, finished := messageTimestamps(entry.Status.Messages)
	if started > 0 {
		res.Started = time.UnixMilli(started)
	}
	if finished > 0 {
		res.Finished = time.UnixMilli(finished)
	}
	return res
}

// messageTimestamps extracts the execution_start timestamp and the last
// timestamp from a history's status messages. Messages are [name, data]
// pairs; malformed ones are skipped.
func messageTimestamps(messages []json.RawMessage) (started, finished int64) {
	for _, raw := range messages {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
			continue
		}
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil {
			continue
		}
		var data struct {
			Timestamp int64 `json:"timestamp"`
		}
		if err := json.Unmarshal(pair[1], &data); err != nil || data.Timestamp == 0 {
			continue
		}
		if name == "execution_start" && started == 0 {
			started = data.Timestamp
		}
		if data.Timestamp > finished {
			finished = data.Timestamp
		}
	}
	return started, finished
}

// ElapsedTime computes the wall-clock breakdown from a result's reported
// timing. Results without timing yield a zero breakdown.
func (c *Client) ElapsedTime(res *ports.Result) ports.Elapsed {
	if res == nil || res.Started.IsZero() || res.Finished.IsZero() || res.Finished.Before(res.Started) {
		return ports.Elapsed{}
	}
	total := res.Finished.Sub(res.Started).Seconds()
	hours := int(total) / 3600
	minutes := (int(total) % 3600) / 60
	seconds := total - float64(hours*3600) - float64(minutes*60)
	return ports.Elapsed{Hours: hours, Minutes: minutes, Seconds: seconds, Total: total}
}
