package controllers

import (
	"github.com/Hamdan-B/FoodiesHub/pkg/resp"
	"github.com/Hamdan-B/FoodiesHub/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc    *services.AdminService
	Orders *services.OrderService
}

func NewAdminController(svc *services.AdminService, orders *services.OrderService) *AdminController {
	return &AdminController{Svc: svc, Orders: orders}
}

func (ac *AdminController) Users(c *gin.Context) {
	users, err := ac.Svc.ListUsers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

func (ac *AdminController) Stores(c *gin.Context) {
	stores, err := ac.Svc.ListStores()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"stores": stores})
}

func (ac *AdminController) ListOrders(c *gin.Context) {
	orders, err := ac.Svc.ListOrders()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

type approvalReq struct {
	Approved *bool `json:"approved" binding:"required"`
}

// POST /admin/users/:id/seller-approval
func (ac *AdminController) SellerApproval(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad user id")
		return
	}
	var req approvalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Svc.SetSellerApproval(id, *req.Approved); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"sellerApproved": *req.Approved})
}

// POST /admin/users/:id/rider-approval
func (ac *AdminController) RiderApproval(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad user id")
		return
	}
	var req approvalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Svc.SetRiderApproval(id, *req.Approved); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"riderApproved": *req.Approved})
}

// POST /admin/orders/:id/cancel
func (ac *AdminController) CancelOrder(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	if err := ac.Orders.AdminCancel(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderStatus": "cancelled"})
}
