package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/DedS3t/monopoly-engine/app/models"
)

const defaultURL = "https://openrouter.ai/api/v1/chat/completions"

const systemPrompt = `You are an expert Monopoly player AI. You must analyze the game state and make optimal strategic decisions.

MONOPOLY RULES SUMMARY:
- Goal: Be the last player with money/assets
- Properties: Buy to collect rent from opponents
- Monopolies: Own all properties of one color to double rent and build houses
- Jail: Pay the fine or use a card to exit; or try rolling doubles (3 turns max)
- Bankruptcy: Occurs when you can't pay debts

You must respond with a valid JSON object containing your decision.`

// Remote asks an OpenRouter-compatible chat-completions endpoint for a
// decision. Any transport error, non-2xx status or unparseable body is
// returned as an error; the engine's guard turns that into the fallback.
type Remote struct {
	Model  string
	APIKey string
	URL    string
	Client *http.Client
}

// NewRemote reads OPENROUTER_API_KEY and OPENROUTER_URL from the
// environment, matching how the rest of the platform is configured.
func NewRemote(model string) *Remote {
	url := os.Getenv("OPENROUTER_URL")
	if url == "" {
		url = defaultURL
	}
	return &Remote{
		Model:  model,
		APIKey: os.Getenv("OPENROUTER_API_KEY"),
		URL:    url,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

// HasServerKey reports whether a server-side API key is configured.
func HasServerKey() bool {
	return os.Getenv("OPENROUTER_API_KEY") != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (r *Remote) Decide(ctx context.Context, req models.DecisionRequest) (models.Decision, error) {
	if r.APIKey == "" {
		return models.Decision{}, errors.New("no API key configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model: r.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(req)},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return models.Decision{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(payload))
	if err != nil {
		return models.Decision{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+r.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(httpReq)
	if err != nil {
		return models.Decision{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Decision{}, fmt.Errorf("LLM API error: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Decision{}, err
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return models.Decision{}, err
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return models.Decision{}, errors.New("no response from LLM")
	}

	block, ok := ExtractJSON(chat.Choices[0].Message.Content)
	if !ok {
		return models.Decision{}, errors.New("could not locate JSON in LLM response")
	}
	var decision models.Decision
	if err := json.Unmarshal([]byte(block), &decision); err != nil {
		return models.Decision{}, err
	}
	if decision.Action == "" {
		return models.Decision{}, errors.New("LLM response missing action")
	}
	return decision, nil
}

func buildUserPrompt(req models.DecisionRequest) string {
	var owned []string
	for _, property := range req.Owned {
		tag := fmt.Sprintf("%s (%dH)", property.Name, property.Houses)
		if property.HasHotel {
			tag = property.Name + " (Hotel)"
		}
		owned = append(owned, tag)
	}
	if len(owned) == 0 {
		owned = []string{"None"}
	}
	var opponents []string
	for _, opponent := range req.Opponents {
		opponents = append(opponents, fmt.Sprintf("%s: $%d, %d properties", opponent.Name, opponent.Balance, opponent.Properties))
	}
	roll := "Not rolled yet"
	if req.LastRoll != nil {
		roll = fmt.Sprintf("%d + %d = %d", req.LastRoll.Die1, req.LastRoll.Die2, req.LastRoll.Total())
	}

	return fmt.Sprintf(`CURRENT GAME STATE:
- Turn: %d
- Your name: %s
- Your money: $%d
- Your position: %s (space %d)
- Your properties: %s
- Jail cards: %d
- In jail: %t
- Last dice roll: %s
- Opponents: %s
- Free Parking pot: $%d

DECISION REQUIRED: %s
AVAILABLE OPTIONS: %s

Analyze the situation and respond with a JSON object:
{
  "action": "your_chosen_action",
  "reasoning": "brief explanation of your strategic thinking",
  "confidence": 0.0 to 1.0
}

Choose the action that maximizes your chance of winning the game.`,
		req.Turn, req.Player.Name, req.Player.Balance, req.SpaceName, req.Player.Pos,
		strings.Join(owned, ", "), req.Player.JailCards, req.Player.InJail, roll,
		strings.Join(opponents, "; "), req.FreeParking,
		req.Detail, strings.Join(req.Options, ", "))
}

// ExtractJSON returns the first balanced {...} block in free-form text,
// ignoring braces inside JSON strings.
func ExtractJSON(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
