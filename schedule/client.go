// Package schedule fetches class schedules from the remote schedule API.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"registro/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("schedule API returned status %d", e.Code)
}

// Client calls the schedule endpoint with HTTP Basic credentials.
type Client struct {
	url     string
	timeout time.Duration
}

// NewClient creates a client for the given endpoint URL.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{url: url, timeout: timeout}
}

// Fetch requests the schedule for a control number.
func (c *Client) Fetch(controlNumber, password string) ([]models.ScheduleEntry, error) {
	agent := fiber.Get(c.url)
	agent.BasicAuth(controlNumber, password)
	agent.ContentType(fiber.MIMEApplicationJSON)
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("schedule request failed: %w", errors.Join(errs...))
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, &StatusError{Code: code, Body: truncate(string(body), 512)}
	}

	var entries []models.ScheduleEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	if entries == nil {
		entries = make([]models.ScheduleEntry, 0)
	}

	return entries, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
