package support

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/application/support/usecases"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/utils"
)

// AdminHandler serves the support queue. Routes are mounted behind
// RequireAdmin.
type AdminHandler struct {
	listTicketsUC ListTicketsExecutor
	getThreadUC   ThreadExecutor
	sendMessageUC SendSupportMessageExecutor
	closeTicketUC CloseTicketExecutor
	logger        logger.Interface
}

func NewAdminHandler(
	listTicketsUC ListTicketsExecutor,
	getThreadUC ThreadExecutor,
	sendMessageUC SendSupportMessageExecutor,
	closeTicketUC CloseTicketExecutor,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listTicketsUC: listTicketsUC,
		getThreadUC:   getThreadUC,
		sendMessageUC: sendMessageUC,
		closeTicketUC: closeTicketUC,
		logger:        logger,
	}
}

// ListTickets handles GET /admin/support/tickets
func (h *AdminHandler) ListTickets(c *gin.Context) {
	viewer, ok := utils.GetViewer(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Actor:     viewer,
		Status:    c.Query("status"),
		OwnerType: c.Query("owner_type"),
		Page:      p.Page,
		PageSize:  p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// GetThread handles GET /admin/support/tickets/:id/messages
func (h *AdminHandler) GetThread(c *gin.Context) {
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

	thread, err := h.getThreadUC.Execute(c.Request.Context(), usecases.GetSupportThreadQuery{
		TicketID: ticketID,
		Viewer:   viewer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", thread)
}

// Reply handles POST /admin/support/tickets/:id/messages
func (h *AdminHandler) Reply(c *gin.Context) {
	sendSupportMessage(c, h.sendMessageUC, h.logger)
}

// CloseTicket handles POST /admin/support/tickets/:id/close
func (h *AdminHandler) CloseTicket(c *gin.Context) {
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

	ticket, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: ticketID,
		Actor:    viewer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support ticket closed", ticket)
}
