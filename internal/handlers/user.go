package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/services"
)

type UserHandler struct {
	userService      services.UserService
	lifecycleService services.LifecycleService
}

func NewUserHandler(userService services.UserService, lifecycleService services.LifecycleService) *UserHandler {
	return &UserHandler{userService: userService, lifecycleService: lifecycleService}
}

// POST /api/users
func (uh *UserHandler) Create(c *gin.Context) {
	var req services.CreateUserWithAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{Message: "invalid request body", Code: "validation_error"}})
		return
	}
	result, err := uh.lifecycleService.CreateUserWithAddress(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /api/users
func (uh *UserHandler) List(c *gin.Context) {
	users, err := uh.userService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GET /api/users/:email
func (uh *UserHandler) Get(c *gin.Context) {
	user, err := uh.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// PATCH /api/users/:email/name
// body: { "first_name": "...", "last_name": "..." }
func (uh *UserHandler) UpdateNames(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{Message: "invalid request body", Code: "validation_error"}})
		return
	}
	user, err := uh.userService.UpdateNames(c.Request.Context(), c.Param("email"), req.FirstName, req.LastName)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DELETE /api/users/:email
func (uh *UserHandler) Delete(c *gin.Context) {
	result, err := uh.lifecycleService.DeleteUserCascade(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondError(c, err)
		return
	}
	status := "deleted"
	if !result.Found {
		status = "not_found"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":            status,
		"links_deleted":     result.LinksDeleted,
		"addresses_deleted": result.AddressesDeleted,
	})
}
