package api

import (
	"net/http"

	reqdto "coffee-verifier/internal/handler/dto/request"
	resdto "coffee-verifier/internal/handler/dto/response"
	"coffee-verifier/internal/handler/httperr"
	"coffee-verifier/internal/usecase/commands"
	"coffee-verifier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	cmds     commands.VerificationCommands
	resolver commands.StatusResolver
}

func NewVerificationHandler(cmds commands.VerificationCommands, resolver commands.StatusResolver) *VerificationHandler {
	return &VerificationHandler{cmds: cmds, resolver: resolver}
}

// @Summary Submit verification
// @Description Issue a verification request for a coffee batch and trigger the oracle job
// @Tags oracle
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyRequest true "Verification request"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /oracle/verify [post]
func (h *VerificationHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail{Reason: err.Error()})
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to submit verification request")
		return
	}

	c.JSON(http.StatusOK, resdto.NewVerifyResponse(queries.ViewFromRequest(result.Request), result.EstimatedCompletion))
}

// @Summary Get verification status
// @Description Return the current state of a verification request, resolving it when due
// @Tags oracle
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} resdto.VerificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /oracle/status/{requestId} [get]
func (h *VerificationHandler) Status(c *gin.Context) {
	requestID := c.Param("requestId")

	req, err := h.resolver.Resolve(c.Request.Context(), requestID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load verification status")
		return
	}

	res, err := resdto.FromVerificationView(queries.ViewFromRequest(req))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render verification status", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Sync verification result
// @Description Record an oracle outcome delivered by the event listener and mark the batch verified
// @Tags oracle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SyncVerificationRequest true "Oracle outcome"
// @Success 200 {object} resdto.SyncVerificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /sync-verification [post]
func (h *VerificationHandler) Sync(c *gin.Context) {
	var req reqdto.SyncVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail{Reason: err.Error()})
		return
	}

	result, err := h.cmds.Sync(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to sync verification")
		return
	}

	view, err := resdto.FromVerificationView(queries.ViewFromRequest(result.Request))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render verification request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SyncVerificationResponse{
		Success:             true,
		Message:             resdto.SyncMessage(result.Created, result.Changed, result.BatchUpdated),
		Created:             result.Created,
		BatchUpdated:        result.BatchUpdated,
		VerificationRequest: view,
	})
}
