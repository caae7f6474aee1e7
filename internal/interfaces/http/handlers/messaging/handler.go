package messaging

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/application/messaging/usecases"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/utils"
)

type Handler struct {
	sendMessageUC SendMessageExecutor
	getThreadUC   ThreadExecutor
	openThreadUC  ThreadExecutor
	logger        logger.Interface
}

func NewHandler(
	sendMessageUC SendMessageExecutor,
	getThreadUC ThreadExecutor,
	openThreadUC ThreadExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		sendMessageUC: sendMessageUC,
		getThreadUC:   getThreadUC,
		openThreadUC:  openThreadUC,
		logger:        logger,
	}
}

// SendMessage handles POST /conversations/messages
func (h *Handler) SendMessage(c *gin.Context) {
	viewer, ok := utils.GetViewer(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send message", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), req.ToCommand(viewer))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent")
}

// ListThread handles GET /conversations/:id/messages. With open=true the
// thread is marked read for the caller before it is listed.
func (h *Handler) ListThread(c *gin.Context) {
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

	uc := h.getThreadUC
	if c.Query("open") == "true" {
		uc = h.openThreadUC
	}

	thread, err := uc.Execute(c.Request.Context(), usecases.GetThreadQuery{
		ConversationID: conversationID,
		Viewer:         viewer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", thread)
}
