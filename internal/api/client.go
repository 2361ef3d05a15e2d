// Package api implements the HTTP client for the remote task service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/natvega/tasktique/internal/task"
)

// DefaultBaseURL points at the hosted task service.
const DefaultBaseURL = "https://techpix-hackathon-task-management.onrender.com"

// Client talks JSON over HTTP to the remote task service. All calls are
// one-shot: no retries, no backoff. Cancellation and timeouts come from
// the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// FetchTasks retrieves the full task list, plus server-side stats when
// the response carries them.
func (c *Client) FetchTasks(ctx context.Context) ([]task.Task, *task.Stats, error) {
	var resp tasksResponse
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &resp); err != nil {
		return nil, nil, err
	}
	return decodeTasks(resp.Tasks), resp.Metadata.toStats(), nil
}

// CreateTask submits a draft and returns the remote-confirmed task. The
// initial status is always pending regardless of the draft contents.
func (c *Client) CreateTask(ctx context.Context, d task.Draft) (task.Task, error) {
	payload := map[string]any{
		"title":            d.Title,
		"description":      d.Description,
		"priority":         string(d.Priority),
		"due_date":         encodeDueDate(d.DueDate),
		"estimation_type":  string(d.Estimation.Unit),
		"estimation_value": d.Estimation.Value,
		"status":           string(task.StatusPending),
	}

	var resp taskResponse
	if err := c.do(ctx, http.MethodPost, "/tasks", payload, &resp); err != nil {
		return task.Task{}, err
	}
	created := resp.Task.decode()
	// Tags are a local concern; the wire format has no field for them.
	created.Tags = append([]string(nil), d.Tags...)
	return created, nil
}

// UpdateTask sends only the fields the update carries; omitted fields
// are left out of the payload entirely, never nulled.
func (c *Client) UpdateTask(ctx context.Context, id string, u task.Update) (task.Task, error) {
	payload := updatePayload(u)

	var resp taskResponse
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, payload, &resp); err != nil {
		return task.Task{}, err
	}
	return resp.Task.decode(), nil
}

// UpdateTaskStatus flips a task to the given status. The service expects
// a PUT carrying both the status and the derived completed flag.
func (c *Client) UpdateTaskStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	payload := map[string]any{
		"status":    string(status),
		"completed": status == task.StatusCompleted,
	}

	var resp taskResponse
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, payload, &resp); err != nil {
		return task.Task{}, err
	}
	return resp.Task.decode(), nil
}

// DeleteTask removes a task from the remote service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	var resp messageResponse
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, &resp)
}

// ProcessPrompt sends free text to the AI endpoint and returns the tasks
// it generated, plus server-side stats when present.
func (c *Client) ProcessPrompt(ctx context.Context, text string) ([]task.Task, *task.Stats, error) {
	payload := map[string]any{"input_text": text}

	var resp tasksResponse
	if err := c.do(ctx, http.MethodPost, "/process-tasks", payload, &resp); err != nil {
		return nil, nil, err
	}
	return decodeTasks(resp.Tasks), resp.Metadata.toStats(), nil
}

// do performs one HTTP round trip, encoding the payload as JSON and
// decoding the response into out. Non-2xx responses are turned into an
// error carrying the service's message.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp messageResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("%s", errResp.Message)
		}
		return fmt.Errorf("task service returned %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// updatePayload maps an Update to the wire shape. Fields the update does
// not carry are absent from the map.
func updatePayload(u task.Update) map[string]any {
	payload := make(map[string]any)
	if u.Title != nil {
		payload["title"] = *u.Title
	}
	if u.Description != nil {
		payload["description"] = *u.Description
	}
	if u.Priority != nil {
		payload["priority"] = string(*u.Priority)
	}
	if u.DueDate != nil {
		payload["due_date"] = u.DueDate.Format(time.RFC3339)
	} else if u.ClearDueDate {
		payload["due_date"] = nil
	}
	if u.Estimation != nil {
		payload["estimation_type"] = string(u.Estimation.Unit)
		payload["estimation_value"] = u.Estimation.Value
	}
	if s := u.NewStatus(); s != nil {
		payload["status"] = string(*s)
		payload["completed"] = *s == task.StatusCompleted
	}
	return payload
}

func encodeDueDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// placeholderID fills in for tasks the service returns without an _id.
// Not stable across sessions.
func placeholderID() string {
	return "local-" + uuid.NewString()
}
