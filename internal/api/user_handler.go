package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateUserRequest defines the expected body for registering a user.
// The landing page form posts urlencoded; API clients post JSON.
type CreateUserRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
}

// UserResponse is the DTO for returning a user. The "_id" key matches the
// wire format of the original tracker API.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(u *domain.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       u.ID.Hex(),
		Username: u.Username,
	}
}

// MapUsersToResponse converts a slice of domain.User to a slice of UserResponse DTO.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = MapUserToResponse(&u)
	}
	return responses
}

// --- Handler Methods ---

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			log.Printf("ERROR: create user: %v", err)
			abortWithError(c, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// ListUsers handles GET /api/users. An empty collection yields an empty
// JSON array, never a message body.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: list users: %v", err)
		abortWithError(c, http.StatusInternalServerError, "failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}
