package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-system/internal/core/ports"
)

type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type createMessageRequest struct {
	ProjectID  string `json:"project_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
	FileID     string `json:"file_id,omitempty"`
	Content    string `json:"content" validate:"required"`
}

type updateMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// Create posts a message on a project. The sender is always the
// authenticated identity.
//
// @Summary      Send a message
// @Tags         messages
// @Router       /messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.Create(c.Request().Context(), claims, ports.CreateMessageInput{
		ProjectID:  req.ProjectID,
		ReceiverID: req.ReceiverID,
		FileID:     req.FileID,
		Content:    req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, message)
}

// ListByProject returns a project's messages ordered by send time.
//
// @Summary      List project messages
// @Tags         messages
// @Router       /projects/{id}/messages [get]
func (h *MessageHandler) ListByProject(c echo.Context) error {
	messages, err := h.messageService.ListByProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Get returns a single message.
//
// @Summary      Get a message
// @Tags         messages
// @Router       /messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	message, err := h.messageService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message)
}

// Update edits a message's content. Only the sender may do this.
//
// @Summary      Edit a message
// @Tags         messages
// @Router       /messages/{id} [patch]
func (h *MessageHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.UpdateContent(c.Request().Context(), claims, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message)
}

// Delete removes a message. Only the sender may do this.
//
// @Summary      Delete a message
// @Tags         messages
// @Router       /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.messageService.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
