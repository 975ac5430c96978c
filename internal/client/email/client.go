package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jobdesk/messaging-service/internal/config"
	"github.com/jobdesk/messaging-service/internal/model"
)

type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Email.BaseURL,
		apiKey:  cfg.Email.APIKey,
		from:    cfg.Email.From,
		httpClient: &http.Client{
			Timeout: cfg.Email.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Send posts the letter to the mail gateway. Callers on the compose path
// treat a failure as degraded delivery: it is logged and never rolls back
// the message.
func (c *Client) Send(ctx context.Context, letter model.EmailLetter) error {
	payload := struct {
		From string `json:"from"`
		model.EmailLetter
	}{
		From:        c.from,
		EmailLetter: letter,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/letters", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if errorData, exists := response["error"]; exists && errorData != nil {
		return fmt.Errorf("mail gateway error: %v", errorData)
	}

	return nil
}
