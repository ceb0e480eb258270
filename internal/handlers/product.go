// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/launchpad-backend/internal/i18n"
	"github.com/javajoker/launchpad-backend/internal/services"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	page, err := h.productService.SearchProducts(c.Request.Context(), params)
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(page.Items, page.TotalCount, params))
}

// GET /products/all
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/reported
func (h *ProductHandler) GetReportedProducts(c *gin.Context) {
	products, err := h.productService.ListReportedProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/stats
func (h *ProductHandler) GetStats(c *gin.Context) {
	stats, err := h.productService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.CreatedResponse(c, i18n.KeyProductCreated, product)
}

// PATCH /products/:id
func (h *ProductHandler) DecideProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	var req services.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	status, err := h.productService.DecideProduct(c.Request.Context(), id, req.Action, utils.GetActorFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeyProductDecided, gin.H{"_id": id, "status": status})
}

// PATCH /products/:id/featured
func (h *ProductHandler) FeatureProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.productService.FeatureProduct(c.Request.Context(), id, utils.GetActorFromContext(c)); err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeyProductFeatured, gin.H{"_id": id, "isFeatured": true})
}

// PUT /products/:id/upvote
func (h *ProductHandler) UpvoteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpvoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.productService.UpvoteProduct(c.Request.Context(), c.Param("id"), &req); err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeyUpvoteRecorded, nil)
}

// PUT /products/:id/report
func (h *ProductHandler) ReportProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.productService.ReportProduct(c.Request.Context(), c.Param("id"), &req); err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeyReportRecorded, nil)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.productService.DeleteProduct(c.Request.Context(), id, utils.GetActorFromContext(c)); err != nil {
		utils.HandleServiceError(c, err, i18n.KeyProductNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeyProductDeleted, gin.H{"_id": id})
}
