package controllers

import (
	"github.com/Hamdan-B/FoodiesHub/pkg/resp"
	"github.com/Hamdan-B/FoodiesHub/repository"
	"github.com/Hamdan-B/FoodiesHub/services"
	"github.com/Hamdan-B/FoodiesHub/utils"

	"github.com/gin-gonic/gin"
)

type RiderController struct {
	Riders *services.RiderService
	Orders *services.OrderService
	Users  *repository.UserRepository
}

func NewRiderController(riders *services.RiderService, orders *services.OrderService, users *repository.UserRepository) *RiderController {
	return &RiderController{Riders: riders, Orders: orders, Users: users}
}

func (rc *RiderController) approved(c *gin.Context) (bool, bool) {
	user, err := rc.Users.GetByID(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return false, false
	}
	return user.RiderApproved != nil && *user.RiderApproved, true
}

func (rc *RiderController) requireApproved(c *gin.Context) bool {
	ok, loaded := rc.approved(c)
	if !loaded {
		return false
	}
	if !ok {
		resp.Forbidden(c, "rider approval pending")
		return false
	}
	return true
}

// GET /rider/me
func (rc *RiderController) Me(c *gin.Context) {
	approved, loaded := rc.approved(c)
	if !loaded {
		return
	}
	rider, err := rc.Riders.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"approved": approved, "rider": rider})
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// POST /rider/status
func (rc *RiderController) SetStatus(c *gin.Context) {
	if !rc.requireApproved(c) {
		return
	}
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := rc.Riders.SetStatus(utils.CurrentUserID(c), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

type availabilityReq struct {
	Availability string `json:"availability" binding:"required"`
}

// POST /rider/availability
func (rc *RiderController) SetAvailability(c *gin.Context) {
	if !rc.requireApproved(c) {
		return
	}
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := rc.Riders.SetAvailability(utils.CurrentUserID(c), req.Availability); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"availability": req.Availability})
}

// GET /rider/orders/available
func (rc *RiderController) Available(c *gin.Context) {
	if !rc.requireApproved(c) {
		return
	}
	orders, err := rc.Orders.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /rider/orders
func (rc *RiderController) MyOrders(c *gin.Context) {
	if !rc.requireApproved(c) {
		return
	}
	orders, err := rc.Orders.ListForRider(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// POST /rider/orders/:id/claim
func (rc *RiderController) Claim(c *gin.Context) {
	if !rc.requireApproved(c) {
		return
	}
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	if err := rc.Orders.RiderClaim(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderStatus": "picked_up"})
}

// POST /rider/orders/:id/pickup — start delivering, returns the OTP the
// rider reads out at the door.
func (rc *RiderController) StartDelivery(c *gin.Context) {
	if !rc.requireApproved(c) {
		return
	}
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	otp, err := rc.Orders.RiderStartDelivery(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderStatus": "delivering", "deliveryOTP": otp})
}

// POST /rider/orders/:id/delivered
func (rc *RiderController) Delivered(c *gin.Context) {
	if !rc.requireApproved(c) {
		return
	}
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	if err := rc.Orders.RiderDeliver(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderStatus": "delivered"})
}

type profileImageReq struct {
	ImageURL string `json:"imageUrl" binding:"required,url"`
}

// POST /rider/profile-image
func (rc *RiderController) SetProfileImage(c *gin.Context) {
	if !rc.requireApproved(c) {
		return
	}
	var req profileImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := rc.Riders.SetProfileImage(utils.CurrentUserID(c), req.ImageURL); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"imageUrl": req.ImageURL})
}
