package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CollaborationHandler struct {
	collaborationUC domain.CollaborationUsecase
}

func NewCollaborationHandler(protected *gin.RouterGroup, collaborationUC domain.CollaborationUsecase) {
	handler := &CollaborationHandler{collaborationUC: collaborationUC}

	collaborations := protected.Group("/collaborations")
	{
		collaborations.POST("", handler.Send)
		collaborations.GET("/sent", handler.Sent)
		collaborations.GET("/received", handler.Received)
		collaborations.PATCH("/:id", handler.Respond)
	}
}

type SendCollaborationRequest struct {
	ToProfileID string `json:"to_profile_id" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

type RespondCollaborationRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// Send godoc
// @Summary      Send a collaboration request
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      SendCollaborationRequest  true  "Recipient and message"
// @Success      201      {object}  response.Response{data=domain.CollaborationRequest}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /collaborations [post]
func (h *CollaborationHandler) Send(c *gin.Context) {
	var req SendCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	request, err := h.collaborationUC.Send(c.Request.Context(), req.ToProfileID, req.Message)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Collaboration request sent", request)
}

// Sent godoc
// @Summary      Requests I sent
// @Tags         collaborations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.CollaborationRequest}
// @Router       /collaborations/sent [get]
func (h *CollaborationHandler) Sent(c *gin.Context) {
	requests, err := h.collaborationUC.Sent(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Sent requests", requests)
}

// Received godoc
// @Summary      Pending requests addressed to me
// @Tags         collaborations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]domain.ReceivedRequest}
// @Router       /collaborations/received [get]
func (h *CollaborationHandler) Received(c *gin.Context) {
	requests, err := h.collaborationUC.Received(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Received requests", requests)
}

// Respond godoc
// @Summary      Accept or reject a request
// @Description  Only the recipient can respond, and only while the request is still pending
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Request ID"
// @Param        request  body      RespondCollaborationRequest  true  "New status"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /collaborations/{id} [patch]
func (h *CollaborationHandler) Respond(c *gin.Context) {
	var req RespondCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.collaborationUC.Respond(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Request "+req.Status, nil)
}
