package gpt

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hammamikhairi/drivethru/internal/domain"
	"github.com/hammamikhairi/drivethru/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*Agent)(nil)

// Agent is the LLM-backed intent extractor. The CLI consults it only
// for input the keyword parser couldn't place.
type Agent struct {
	client *Client
	log    *logger.Logger
}

// NewAgent creates an intent extraction agent backed by the given Client.
func NewAgent(client *Client, log *logger.Logger) *Agent {
	return &Agent{client: client, log: log}
}

// extractResponse is the JSON the model returns for intent extraction.
type extractResponse struct {
	Intent       string `json:"intent"`
	Item         string `json:"item"`
	Quantity     int    `json:"quantity"`
	Size         string `json:"size"`
	Instructions string `json:"instructions"`
}

// Parse extracts a structured intent from one utterance. Model or JSON
// failures degrade to IntentUnknown with the raw input preserved — the
// session never dies on a flaky extraction.
func (a *Agent) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	messages := []Message{
		{Role: RoleSystem, Content: PromptExtract},
		{Role: RoleUser, Content: input},
	}

	raw, err := a.client.Chat(ctx, messages)
	if err != nil {
		a.log.Error("gpt: extraction failed: %v", err)
		return &domain.Intent{Type: domain.IntentUnknown, Item: input, Quantity: 1}, nil
	}

	raw = stripCodeFence(raw)

	var resp extractResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		a.log.Error("gpt: failed to parse extraction JSON: %v\nraw: %s", err, raw)
		return &domain.Intent{Type: domain.IntentUnknown, Item: input, Quantity: 1}, nil
	}

	intentType := domain.IntentFromString(resp.Intent)
	quantity := resp.Quantity
	if quantity < 1 {
		quantity = 1
	}

	a.log.Debug("gpt: extracted %q -> %s (item=%q qty=%d size=%q)", input, intentType, resp.Item, quantity, resp.Size)

	return &domain.Intent{
		Type:         intentType,
		Item:         resp.Item,
		Quantity:     quantity,
		Size:         domain.SizeFromString(strings.ToLower(resp.Size)),
		Instructions: resp.Instructions,
	}, nil
}

// stripCodeFence removes ```json ... ``` wrappers that LLMs love to add.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
