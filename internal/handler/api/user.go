package api

import (
	"github.com/cockroachdb/errors"
	"net/http"

	reqdto "hospedagem-api/internal/handler/dto/request"
	"hospedagem-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
}

func NewUserHandler(userCommands commands.UserCommands) *UserHandler {
	return &UserHandler{userCommands: userCommands}
}

// @Summary Register staff account
// @Description Create a new staff account (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "User registration request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.userCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateLogin):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Login already taken",
			})
		case errors.Is(err, commands.ErrUserValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid user data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}
