// Package inbox serves the unified inbox and the mark-read endpoints for
// both conversations and support tickets.
package inbox

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/application/inbox/usecases"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/utils"
)

type Handler struct {
	listInboxUC ListInboxExecutor
	readMarker  ReadMarker
	logger      logger.Interface
}

func NewHandler(listInboxUC ListInboxExecutor, readMarker ReadMarker, logger logger.Interface) *Handler {
	return &Handler{
		listInboxUC: listInboxUC,
		readMarker:  readMarker,
		logger:      logger,
	}
}

// ListInbox handles GET /inbox
func (h *Handler) ListInbox(c *gin.Context) {
	viewer, ok := utils.GetViewer(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	entries, err := h.listInboxUC.Execute(c.Request.Context(), usecases.ListInboxQuery{Viewer: viewer})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// MarkConversationRead handles POST /conversations/:id/read
func (h *Handler) MarkConversationRead(c *gin.Context) {
	viewer, ok := utils.GetViewer(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	conversationID, err := utils.ParseIDParam(c, "id", "conversation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.readMarker.MarkConversationRead(c.Request.Context(), conversationID, viewer)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkTicketRead handles POST /support/tickets/:id/read
func (h *Handler) MarkTicketRead(c *gin.Context) {
	viewer, ok := utils.GetViewer(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.readMarker.MarkTicketRead(c.Request.Context(), ticketID, viewer)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
