package api

import (
	"net/http"
	"strconv"

	resdto "coffee-verifier/internal/handler/dto/response"
	"coffee-verifier/internal/handler/httperr"
	"coffee-verifier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BatchHandler struct {
	q queries.BatchQueries
}

func NewBatchHandler(q queries.BatchQueries) *BatchHandler {
	return &BatchHandler{q: q}
}

func parseBatchID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("batchId"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid batch id", nil)
		return 0, false
	}
	return id, true
}

// @Summary Get batch
// @Description Get the verification state of a coffee batch
// @Tags batches
// @Produce json
// @Param batchId path int true "Batch ID"
// @Success 200 {object} resdto.BatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /batches/{batchId} [get]
func (h *BatchHandler) GetBatch(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	view, err := h.q.GetBatch(c.Request.Context(), batchID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load batch")
		return
	}
	res, err := resdto.FromBatchView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render batch", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List batch verifications
// @Description List verification requests issued for a batch, newest first, with keyset pagination
// @Tags batches
// @Produce json
// @Param batchId path int true "Batch ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.VerificationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /batches/{batchId}/verifications [get]
func (h *BatchHandler) ListVerifications(c *gin.Context) {
	batchID, ok := parseBatchID(c)
	if !ok {
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil || iv <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, queries.ErrInvalidLimit, "Invalid limit", nil)
			return
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListVerifications(c.Request.Context(), batchID, cursor, limit)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list verifications")
		return
	}
	res, err := resdto.FromVerificationViews(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render verifications", nil)
		return
	}
	out := resdto.VerificationListResponse{Items: res}
	if next != nil {
		out.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, out)
}
