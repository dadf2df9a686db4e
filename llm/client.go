package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"
)

// SystemPrompt pins the chatbot to platform topics.
const SystemPrompt = `You are a helpful assistant for FoodiesHub, a food delivery platform.
You can only answer questions related to:
- FoodiesHub website FAQs
- Food recommendations
- Nutrition information and explanations
- Ordering process
- Restaurant information

If asked about unrelated topics, politely redirect to FoodiesHub-related questions.`

const systemAck = "I understand. I will only answer FoodiesHub-related questions."

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

type Recommendation struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Category       string  `json:"category"`
}

type RecommendationFilters struct {
	Calories string
	Budget   string
	Category string
}

// Client talks to the hosted generative-language API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
	}
}

// ---- wire types ----

type genPart struct {
	Text string `json:"text"`
}
type genContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []genPart `json:"parts"`
}
type genRequest struct {
	Contents []genContent `json:"contents"`
}
type genResponse struct {
	Candidates []struct {
		Content struct {
			Parts []genPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, contents []genContent) (string, error) {
	body, err := json.Marshal(genRequest{Contents: contents})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.Remote("llm request failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return "", apperr.Remote(fmt.Sprintf("llm returned %d: %s", res.StatusCode, b), nil)
	}

	var out genResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", apperr.Remote("llm response decode failed", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", apperr.Remote("llm returned no candidates", nil)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// Chat sends a user message with prior conversation turns, always
// under the fixed system instruction.
func (c *Client) Chat(ctx context.Context, message string, history []Message) (string, error) {
	contents := []genContent{
		{Role: "user", Parts: []genPart{{Text: SystemPrompt}}},
		{Role: "model", Parts: []genPart{{Text: systemAck}}},
	}
	for _, m := range history {
		role := "model"
		if m.Role == "user" {
			role = "user"
		}
		contents = append(contents, genContent{Role: role, Parts: []genPart{{Text: m.Content}}})
	}
	contents = append(contents, genContent{Role: "user", Parts: []genPart{{Text: message}}})

	return c.generate(ctx, contents)
}

// GenerateNutrition asks for a structured estimate and scans the reply
// for the JSON object the model was instructed to emit.
func (c *Client) GenerateNutrition(ctx context.Context, name, description, category, portion string) (*entity.Nutrition, error) {
	if portion == "" {
		portion = "1 serving"
	}
	prompt := fmt.Sprintf(`Estimate the nutritional information for the following food item:
- Name: %s
- Description: %s
- Category: %s
- Portion Size: %s

Provide ONLY a JSON response with the following structure (no additional text):
{
  "calories": <number>,
  "protein": <number in grams>,
  "carbs": <number in grams>,
  "fat": <number in grams>
}`, name, description, category, portion)

	text, err := c.generate(ctx, []genContent{{Role: "user", Parts: []genPart{{Text: prompt}}}})
	if err != nil {
		return nil, err
	}

	raw, ok := ExtractJSONObject(text)
	if !ok {
		return nil, apperr.Parse("no JSON object in nutrition response", nil)
	}
	var n entity.Nutrition
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return nil, apperr.Parse("nutrition response is not the expected shape", err)
	}
	n.IsAIGenerated = true
	return &n, nil
}

// Recommendations asks for group-sized meal suggestions.
func (c *Client) Recommendations(ctx context.Context, groupSize string, f RecommendationFilters) ([]Recommendation, error) {
	prompt := fmt.Sprintf("Recommend food items suitable for a group of %s people from FoodiesHub.", groupSize)
	if f.Calories != "" {
		prompt += fmt.Sprintf(" Target calories: %s.", f.Calories)
	}
	if f.Budget != "" {
		prompt += fmt.Sprintf(" Budget: %s.", f.Budget)
	}
	if f.Category != "" {
		prompt += fmt.Sprintf(" Category preference: %s.", f.Category)
	}
	prompt += " Provide 5-7 recommendations with brief descriptions. Format as a JSON array with objects containing: name, description, estimatedPrice, category."

	text, err := c.generate(ctx, []genContent{{Role: "user", Parts: []genPart{{Text: prompt}}}})
	if err != nil {
		return nil, err
	}

	raw, ok := ExtractJSONArray(text)
	if !ok {
		return nil, apperr.Parse("no JSON array in recommendations response", nil)
	}
	var recs []Recommendation
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, apperr.Parse("recommendations response is not the expected shape", err)
	}
	return recs, nil
}
