package api

import (
	"github.com/cockroachdb/errors"
	"net/http"

	"hospedagem-api/internal/domain/client"
	reqdto "hospedagem-api/internal/handler/dto/request"
	resdto "hospedagem-api/internal/handler/dto/response"
	"hospedagem-api/internal/usecase/commands"
	"hospedagem-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clientCommands commands.ClientCommands
	clientQueries  queries.ClientQueries
}

func NewClientHandler(clientCommands commands.ClientCommands, clientQueries queries.ClientQueries) *ClientHandler {
	return &ClientHandler{
		clientCommands: clientCommands,
		clientQueries:  clientQueries,
	}
}

// @Summary List clients
// @Description List all registered guests
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClientResponse
// @Failure 401 {object} map[string]string
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	views, err := h.clientQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ClientResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromClientView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get client
// @Description Get client by ID
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client ID format",
		})
		return
	}

	view, err := h.clientQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Client not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

// @Summary Find client by document
// @Description Look a client up by CPF or CNPJ, with or without punctuation
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param document path string true "CPF or CNPJ"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clients/by-document/{document} [get]
func (h *ClientHandler) GetByDocument(c *gin.Context) {
	document, err := client.NewDocument(c.Param("document"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid document format",
		})
		return
	}

	view, err := h.clientQueries.GetByDocument(c.Request.Context(), document.Digits())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Client not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

// @Summary Register client
// @Description Register a new guest
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClientRequest true "Client request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req reqdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.clientCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.handleClientError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update client
// @Description Update a guest's name and phone
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body reqdto.UpdateClientRequest true "Client request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client ID format",
		})
		return
	}

	var req reqdto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.clientCommands.Update(c.Request.Context(), id, req); err != nil {
		h.handleClientError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete client
// @Description Delete a guest without bookings (gerente or admin)
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client ID format",
		})
		return
	}

	if err := h.clientCommands.Delete(c.Request.Context(), id); err != nil {
		h.handleClientError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) handleClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Client not found",
		})
	case errors.Is(err, commands.ErrDuplicateDocument):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Document already registered",
		})
	case errors.Is(err, commands.ErrClientHasBookings):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Client has bookings",
		})
	case errors.Is(err, commands.ErrClientValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid client data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
