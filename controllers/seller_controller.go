package controllers

import (
	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/llm"
	"github.com/Hamdan-B/FoodiesHub/pkg/resp"
	"github.com/Hamdan-B/FoodiesHub/repository"
	"github.com/Hamdan-B/FoodiesHub/services"
	"github.com/Hamdan-B/FoodiesHub/utils"

	"github.com/gin-gonic/gin"
)

type SellerController struct {
	Stores *services.StoreService
	Orders *services.OrderService
	Users  *repository.UserRepository
	LLM    *llm.Client
}

func NewSellerController(stores *services.StoreService, orders *services.OrderService, users *repository.UserRepository, llmClient *llm.Client) *SellerController {
	return &SellerController{Stores: stores, Orders: orders, Users: users, LLM: llmClient}
}

// approved reports the seller's approval flag. Pending approval is a
// rendered state, not an error, so GET endpoints answer with it while
// mutations are refused.
func (sc *SellerController) approved(c *gin.Context) (bool, bool) {
	user, err := sc.Users.GetByID(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return false, false
	}
	return user.SellerApproved != nil && *user.SellerApproved, true
}

func (sc *SellerController) requireApproved(c *gin.Context) bool {
	ok, loaded := sc.approved(c)
	if !loaded {
		return false
	}
	if !ok {
		resp.Forbidden(c, "seller approval pending")
		return false
	}
	return true
}

// GET /seller/store
func (sc *SellerController) MyStore(c *gin.Context) {
	approved, loaded := sc.approved(c)
	if !loaded {
		return
	}
	store, err := sc.Stores.MyStore(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"approved": approved, "store": store})
}

// POST /seller/store
func (sc *SellerController) CreateStore(c *gin.Context) {
	if !sc.requireApproved(c) {
		return
	}
	var req services.CreateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	store, err := sc.Stores.CreateStore(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, store)
}

// PATCH /seller/store
func (sc *SellerController) UpdateStore(c *gin.Context) {
	if !sc.requireApproved(c) {
		return
	}
	var req services.UpdateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	store, err := sc.Stores.UpdateStore(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, store)
}

// GET /seller/foods
func (sc *SellerController) ListFoods(c *gin.Context) {
	if !sc.requireApproved(c) {
		return
	}
	items, err := sc.Stores.ListMyFoods(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /seller/foods
func (sc *SellerController) CreateFood(c *gin.Context) {
	if !sc.requireApproved(c) {
		return
	}
	var req services.FoodItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := sc.Stores.CreateFood(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, food)
}

// PATCH /seller/foods/:id
func (sc *SellerController) UpdateFood(c *gin.Context) {
	if !sc.requireApproved(c) {
		return
	}
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad food id")
		return
	}
	var req services.FoodItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := sc.Stores.UpdateFood(utils.CurrentUserID(c), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, food)
}

// DELETE /seller/foods/:id
func (sc *SellerController) DeleteFood(c *gin.Context) {
	if !sc.requireApproved(c) {
		return
	}
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad food id")
		return
	}
	if err := sc.Stores.DeleteFood(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type nutritionReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Portion     string `json:"portion"`
}

// POST /seller/foods/nutrition — AI estimate while filling the food
// form. A parse failure surfaces as 422 and the seller types the
// numbers in by hand; item creation is never blocked.
func (sc *SellerController) GenerateNutrition(c *gin.Context) {
	if !sc.requireApproved(c) {
		return
	}
	var req nutritionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	n, err := sc.LLM.GenerateNutrition(c.Request.Context(), req.Name, req.Description, req.Category, req.Portion)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, n)
}

// GET /seller/orders
func (sc *SellerController) ListOrders(c *gin.Context) {
	if !sc.requireApproved(c) {
		return
	}
	orders, err := sc.Orders.ListForSeller(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

func (sc *SellerController) transition(c *gin.Context, target entity.OrderStatus) {
	if !sc.requireApproved(c) {
		return
	}
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	if err := sc.Orders.SellerTransition(utils.CurrentUserID(c), id, target); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderStatus": target})
}

// POST /seller/orders/:id/accept etc.
func (sc *SellerController) Accept(c *gin.Context)  { sc.transition(c, entity.OrderAccepted) }
func (sc *SellerController) Reject(c *gin.Context)  { sc.transition(c, entity.OrderRejected) }
func (sc *SellerController) Prepare(c *gin.Context) { sc.transition(c, entity.OrderPreparing) }
func (sc *SellerController) Ready(c *gin.Context)   { sc.transition(c, entity.OrderReady) }
