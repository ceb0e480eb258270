// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/launchpad-backend/internal/i18n"
	"github.com/javajoker/launchpad-backend/internal/services"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.SuccessResponse(c, users)
}

// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	id, err := h.userService.CreateUser(c.Request.Context(), doc)
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.CreatedResponse(c, i18n.KeyUserCreated, gin.H{"insertedId": id})
}

// PATCH /users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.userService.UpdateRole(c.Request.Context(), c.Param("id"), &req); err != nil {
		utils.HandleServiceError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeyUserRoleUpdated, nil)
}

// PUT /users/:email
func (h *UserHandler) UpdateSubscription(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	res, err := h.userService.UpdateSubscription(c.Request.Context(), c.Param("email"), &req)
	if err != nil {
		utils.HandleServiceError(c, err, i18n.KeyUserNotFound)
		return
	}

	utils.MessageResponse(c, i18n.KeySubscriptionSet, res)
}
