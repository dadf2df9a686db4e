package controllers

import (
	"github.com/Hamdan-B/FoodiesHub/llm"
	"github.com/Hamdan-B/FoodiesHub/pkg/resp"

	"github.com/gin-gonic/gin"
)

type AIController struct{ LLM *llm.Client }

func NewAIController(client *llm.Client) *AIController { return &AIController{LLM: client} }

type chatReq struct {
	Message string        `json:"message" binding:"required"`
	History []llm.Message `json:"history"`
}

// POST /ai/chat
func (ac *AIController) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	reply, err := ac.LLM.Chat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"reply": reply})
}

type recommendationsReq struct {
	GroupSize string `json:"groupSize" binding:"required"`
	Calories  string `json:"calories"`
	Budget    string `json:"budget"`
	Category  string `json:"category"`
}

// POST /ai/recommendations
func (ac *AIController) Recommendations(c *gin.Context) {
	var req recommendationsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	recs, err := ac.LLM.Recommendations(c.Request.Context(), req.GroupSize, llm.RecommendationFilters{
		Calories: req.Calories,
		Budget:   req.Budget,
		Category: req.Category,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"recommendations": recs})
}
