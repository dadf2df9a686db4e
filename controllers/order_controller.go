package controllers

import (
	"github.com/Hamdan-B/FoodiesHub/pkg/resp"
	"github.com/Hamdan-B/FoodiesHub/services"
	"github.com/Hamdan-B/FoodiesHub/utils"

	"github.com/gin-gonic/gin"
)

// OrderController is the buyer side of orders.
type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := oc.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Svc.ListForBuyer(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	order, err := oc.Svc.DetailForBuyer(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	if err := oc.Svc.BuyerCancel(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderStatus": "cancelled"})
}
