// Package support serves support tickets: the owner-facing endpoints for
// users and companies, and the admin queue.
package support

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/application/support/usecases"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/utils"
)

// Handler serves ticket owners.
type Handler struct {
	openTicketUC  OpenTicketExecutor
	sendMessageUC SendSupportMessageExecutor
	getThreadUC   ThreadExecutor
	openThreadUC  ThreadExecutor
	logger        logger.Interface
}

func NewHandler(
	openTicketUC OpenTicketExecutor,
	sendMessageUC SendSupportMessageExecutor,
	getThreadUC ThreadExecutor,
	openThreadUC ThreadExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		openTicketUC:  openTicketUC,
		sendMessageUC: sendMessageUC,
		getThreadUC:   getThreadUC,
		openThreadUC:  openThreadUC,
		logger:        logger,
	}
}

// OpenTicket handles POST /support/tickets
func (h *Handler) OpenTicket(c *gin.Context) {
	viewer, ok := utils.GetViewer(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req OpenTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for open ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	thread, err := h.openTicketUC.Execute(c.Request.Context(), usecases.OpenTicketCommand{
		Owner:   viewer,
		Subject: req.Subject,
		Text:    req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, thread, "Support ticket opened")
}

// ListThread handles GET /support/tickets/:id/messages. With open=true the
// owner's read boundary moves forward before listing.
func (h *Handler) ListThread(c *gin.Context) {
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

	uc := h.getThreadUC
	if c.Query("open") == "true" {
		uc = h.openThreadUC
	}

	thread, err := uc.Execute(c.Request.Context(), usecases.GetSupportThreadQuery{
		TicketID: ticketID,
		Viewer:   viewer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", thread)
}

// SendMessage handles POST /support/tickets/:id/messages
func (h *Handler) SendMessage(c *gin.Context) {
	sendSupportMessage(c, h.sendMessageUC, h.logger)
}

func sendSupportMessage(c *gin.Context, uc SendSupportMessageExecutor, log logger.Interface) {
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

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnw("invalid request body for support message", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := uc.Execute(c.Request.Context(), usecases.SendSupportMessageCommand{
		TicketID:   ticketID,
		SenderType: viewer.Type,
		SenderID:   senderID(viewer),
		Text:       req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent")
}

func senderID(v party.Viewer) *uint {
	if v.ID == 0 {
		return nil
	}
	id := v.ID
	return &id
}
