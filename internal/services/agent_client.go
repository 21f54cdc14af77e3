package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AgentClient talks to the external AI backend that owns outreach email
// generation, the voice agent, and brand provisioning.
type AgentClient struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	log          *zap.Logger
}

func NewAgentClient(baseURL, serviceToken string, log *zap.Logger) *AgentClient {
	return &AgentClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

func (c *AgentClient) do(ctx context.Context, method, url string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(data))
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("agent backend unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("agent backend returned %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

// StartNegotiation kicks off the AI outreach workflow for a negotiation that
// was already persisted locally.
func (c *AgentClient) StartNegotiation(ctx context.Context, negotiationID uuid.UUID) error {
	url := fmt.Sprintf("%s/api/negotiations/%s/start", c.baseURL, negotiationID)
	return c.do(ctx, http.MethodPost, url, nil)
}

// InitiateCall asks the voice agent to place an outbound call.
func (c *AgentClient) InitiateCall(ctx context.Context, negotiationID uuid.UUID, phoneNumber string) error {
	url := fmt.Sprintf("%s/api/calls/initiate", c.baseURL)
	return c.do(ctx, http.MethodPost, url, map[string]any{
		"negotiation_id": negotiationID.String(),
		"phone_number":   phoneNumber,
	})
}

// CreateBrand provisions the brand on the agent backend after first sign-in.
// Best-effort: callers log failures and move on.
func (c *AgentClient) CreateBrand(ctx context.Context, uid, email string, displayName, avatarURL *string) error {
	url := fmt.Sprintf("%s/api/brands", c.baseURL)
	err := c.do(ctx, http.MethodPost, url, map[string]any{
		"uid":          uid,
		"email":        email,
		"display_name": displayName,
		"avatar_url":   avatarURL,
	})
	if err != nil {
		c.log.Warn("failed to provision brand on agent backend", zap.Error(err))
	}
	return err
}
