package controllers

import (
	"errors"
	"strconv"

	"github.com/Hamdan-B/FoodiesHub/pkg/resp"
	"github.com/Hamdan-B/FoodiesHub/services"
	"github.com/Hamdan-B/FoodiesHub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogController is the buyer-facing browse surface.
type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

// GET /stores?city=
func (cc *CatalogController) ListStores(c *gin.Context) {
	stores, err := cc.Svc.ListStores(c.Query("city"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"stores": stores})
}

// GET /stores/:id
func (cc *CatalogController) StoreDetail(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad store id")
		return
	}
	store, err := cc.Svc.GetStore(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "store not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, store)
}

// GET /stores/:id/foods
func (cc *CatalogController) StoreFoods(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		resp.BadRequest(c, "bad store id")
		return
	}
	items, err := cc.Svc.StoreFoods(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /cities
func (cc *CatalogController) Cities(c *gin.Context) {
	cities, err := cc.Svc.Cities()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cities": cities})
}

// GET /reference — the fixed category and city lists for form pickers.
func (cc *CatalogController) Reference(c *gin.Context) {
	resp.OK(c, gin.H{
		"categories": utils.FoodCategories,
		"cities":     utils.PakistanCities,
	})
}

type filterReq struct {
	City   string                 `json:"city"`
	Filter services.CatalogFilter `json:"filter"`
}

// POST /catalog/filter — the group-size recommendation feed.
func (cc *CatalogController) Filter(c *gin.Context) {
	var req filterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	items, err := cc.Svc.Recommend(req.City, req.Filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}
