// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/launchpad-backend/internal/i18n"
	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/services"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

// CatalogHandler serves the review and coupon collections.
type CatalogHandler struct {
	reviewService *services.ReviewService
	couponService *services.CouponService
}

func NewCatalogHandler(reviewService *services.ReviewService, couponService *services.CouponService) *CatalogHandler {
	return &CatalogHandler{
		reviewService: reviewService,
		couponService: couponService,
	}
}

// GET /reviews
func (h *CatalogHandler) GetReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, reviews)
}

// POST /reviews
func (h *CatalogHandler) CreateReview(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	id, err := h.reviewService.CreateReview(c.Request.Context(), doc)
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.CreatedResponse(c, i18n.KeyReviewCreated, gin.H{"insertedId": id})
}

// GET /coupons
func (h *CatalogHandler) GetCoupons(c *gin.Context) {
	coupons, err := h.couponService.ListCoupons(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyCouponNotFound)
		return
	}

	utils.SuccessResponse(c, coupons)
}

// POST /coupons
func (h *CatalogHandler) CreateCoupon(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	id, err := h.couponService.CreateCoupon(c.Request.Context(), doc)
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyCouponNotFound)
		return
	}

	utils.CreatedResponse(c, i18n.KeyCouponCreated, gin.H{"insertedId": id})
}

// PUT /coupons/:id
func (h *CatalogHandler) UpdateCoupon(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	res, err := h.couponService.UpdateCoupon(c.Request.Context(), c.Param("id"), doc)
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyCouponNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeyCouponUpdated, res)
}

// DELETE /coupons/:id
func (h *CatalogHandler) DeleteCoupon(c *gin.Context) {
	if err := h.couponService.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err, i18n.KeyCouponNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeyCouponDeleted, nil)
}

func bindDocument(c *gin.Context) (models.Document, bool) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return nil, false
	}
	return doc, true
}
