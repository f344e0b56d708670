package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhargitai/stock-search-app/internal/domain/dto"
	"github.com/dhargitai/stock-search-app/internal/middleware"
)

// GetProfile handles GET /api/v1/users/me requests.
//
// GetProfile godoc
// @Summary      Get user profile
// @Description  Returns the authenticated user together with their watchlist
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.UserProfile
// @Failure      401  {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      404  {object}  dto.ErrorResponse  "Unknown user"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/users/me [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetUser handles GET /api/v1/users/:id requests.
//
// GetUser godoc
// @Summary      Get user by id
// @Description  Returns a user together with their watchlist
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"  example(b3e1f0a2-1c2d-4e5f-8a9b-0c1d2e3f4a5b)
// @Success      200  {object}  models.UserProfile
// @Failure      404  {object}  dto.ErrorResponse  "Unknown user"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	profile, err := h.users.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateUser handles POST /api/v1/users requests.
//
// CreateUser godoc
// @Summary      Create user
// @Description  Registers a new user record
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateUserRequest  true  "User to create"
// @Success      201      {object}  models.User
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      409      {object}  dto.ErrorResponse  "Email already registered"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.ID, req.Email, req.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user)
}
