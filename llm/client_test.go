package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeModel(t *testing.T, reply string, capture *genRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": reply}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChatCarriesSystemPromptAndHistory(t *testing.T) {
	var got genRequest
	srv := fakeModel(t, "Biryani is a great pick for four people.", &got)
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	reply, err := c.Chat(context.Background(), "What should we order?", []Message{
		{Role: "user", Content: "We are 4 people"},
		{Role: "model", Content: "Noted!"},
	})
	require.NoError(t, err)
	assert.Contains(t, reply, "Biryani")

	// system turn, ack, two history turns, the new message
	require.Len(t, got.Contents, 5)
	assert.Equal(t, SystemPrompt, got.Contents[0].Parts[0].Text)
	assert.Equal(t, "model", got.Contents[1].Role)
	assert.Equal(t, "user", got.Contents[2].Role)
	assert.Equal(t, "What should we order?", got.Contents[4].Parts[0].Text)
}

func TestGenerateNutrition(t *testing.T) {
	t.Run("parses a fenced object", func(t *testing.T) {
		srv := fakeModel(t, "```json\n{\"calories\": 560, \"protein\": 32, \"carbs\": 48, \"fat\": 24}\n```", nil)
		defer srv.Close()

		c := NewClient(srv.URL, "test-model", "test-key")
		n, err := c.GenerateNutrition(context.Background(), "Chicken Karahi", "spicy curry", "Karahi", "")
		require.NoError(t, err)
		assert.Equal(t, 560.0, n.Calories)
		assert.Equal(t, 32.0, n.Protein)
		assert.True(t, n.IsAIGenerated)
	})

	t.Run("prose without JSON is a parse error", func(t *testing.T) {
		srv := fakeModel(t, "Sorry, I cannot help with that.", nil)
		defer srv.Close()

		c := NewClient(srv.URL, "test-model", "test-key")
		_, err := c.GenerateNutrition(context.Background(), "Chai", "", "Beverages", "1 cup")
		require.Error(t, err)
		assert.Equal(t, apperr.KindParse, apperr.KindOf(err))
	})
}

func TestRecommendations(t *testing.T) {
	srv := fakeModel(t, `Here are some options:
[
  {"name": "Family Platter", "description": "BBQ mix", "estimatedPrice": 2500, "category": "BBQ"},
  {"name": "Mega Pizza", "description": "16 inch", "estimatedPrice": 2000, "category": "Pizza"}
]`, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	recs, err := c.Recommendations(context.Background(), "4-6", RecommendationFilters{Budget: "3000"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Family Platter", recs[0].Name)
	assert.Equal(t, 2500.0, recs[0].EstimatedPrice)
}

func TestGenerateRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	_, err := c.Chat(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.Equal(t, apperr.KindRemote, apperr.KindOf(err))
}
