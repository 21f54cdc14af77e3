package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/influenzerflow/backend/internal/services"
	"go.uber.org/zap"
)

// A repo-less service is enough here: every case below must be rejected
// before the handler reaches storage.
func newCampaignTestApp() *fiber.App {
	h := NewCampaignHandler(services.NewCampaignService(nil, zap.NewNop()), zap.NewNop())
	app := fiber.New()
	app.Post("/campaigns", h.CreateCampaign)
	return app
}

func TestCreateCampaignRejectsIncompleteInput(t *testing.T) {
	app := newCampaignTestApp()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing name", `{"budget_per_creator":"500","start_date":"2026-09-01T00:00:00Z","end_date":"2026-10-01T00:00:00Z"}`},
		{"missing budget", `{"name":"Launch","start_date":"2026-09-01T00:00:00Z","end_date":"2026-10-01T00:00:00Z"}`},
		{"missing start date", `{"name":"Launch","budget_per_creator":"500","end_date":"2026-10-01T00:00:00Z"}`},
		{"missing end date", `{"name":"Launch","budget_per_creator":"500","start_date":"2026-09-01T00:00:00Z"}`},
		{"malformed json", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/campaigns", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
			}
		})
	}
}
