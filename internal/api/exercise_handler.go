package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// AddExerciseRequest defines the expected body for logging an exercise.
type AddExerciseRequest struct {
	Description string `json:"description" form:"description" binding:"required"`
	Duration    int    `json:"duration" form:"duration" binding:"required,gt=0"` // Minutes
	Date        string `json:"date" form:"date"`                                 // Optional, YYYY-MM-DD; defaults to today
}

// AddExerciseResponse is the DTO for a logged exercise. The "_id" field
// carries the owning user's id, not the exercise's, matching the wire
// format of the original tracker API which clients depend on.
type AddExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"` // e.g. "Sun Jan 15 2023"
	ID          string `json:"_id"`
}

// LogEntryResponse is one projected entry of a user's exercise log.
type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the DTO for a filtered exercise log. Count is the number
// of returned entries, not the total number of matches.
type LogResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}

// MapLogToResponse converts a service.LogResult to LogResponse DTO.
func MapLogToResponse(result *service.LogResult) LogResponse {
	if result == nil {
		return LogResponse{}
	}
	entries := make([]LogEntryResponse, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        service.FormatDate(e.Date),
		}
	}
	return LogResponse{
		ID:       result.User.ID.Hex(),
		Username: result.User.Username,
		Count:    len(entries),
		Log:      entries,
	}
}

// --- Handler Methods ---

// AddExercise handles POST /api/users/:_id/exercises.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "description and a positive duration are required")
		return
	}

	user, exercise, err := h.exerciseService.AddExercise(
		c.Request.Context(),
		userID,
		req.Description,
		req.Duration,
		req.Date,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR: add exercise: %v", err)
			abortWithError(c, http.StatusInternalServerError, "failed to save exercise")
		}
		return
	}

	c.JSON(http.StatusCreated, AddExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        service.FormatDate(exercise.Date),
		ID:          user.ID.Hex(),
	})
}

// GetLog handles GET /api/users/:_id/logs.
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("_id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := h.exerciseService.GetLog(
		c.Request.Context(),
		userID,
		c.Query("from"),
		c.Query("to"),
		c.Query("limit"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR: get log: %v", err)
			abortWithError(c, http.StatusInternalServerError, "failed to retrieve log")
		}
		return
	}

	c.JSON(http.StatusOK, MapLogToResponse(result))
}
