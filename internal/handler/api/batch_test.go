//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coffee-verifier/internal/handler/api"
	resdto "coffee-verifier/internal/handler/dto/response"
	"coffee-verifier/internal/handler/middleware"
	"coffee-verifier/internal/pkg/errs"
	"coffee-verifier/internal/usecase/queries"
	"coffee-verifier/tests/common/builder"
	"coffee-verifier/tests/common/httptest"
	queriesmock "coffee-verifier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BatchHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBatchQueries
	handler     *api.BatchHandler
}

func (s *BatchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBatchQueries(s.mockCtrl)
	s.handler = api.NewBatchHandler(s.mockQueries)

	s.router.GET("/batches/:batchId", s.handler.GetBatch)
	s.router.GET("/batches/:batchId/verifications", s.handler.ListVerifications)
}

func (s *BatchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(BatchHandlerTestSuite))
}

// ================================================================================
// TestGetBatch
// ================================================================================

func (s *BatchHandlerTestSuite) TestGetBatch() {
	s.Run("success: returns the batch verification state", func() {
		view := builder.NewBatchBuilder().AsVerified().BuildView()
		s.mockQueries.EXPECT().GetBatch(gomock.Any(), int64(7)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/batches/7", nil, "")

		var actual resdto.BatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &actual)
		expected := resdto.BatchResponse{BatchID: 7, IsVerified: true, VerificationStatus: "verified"}
		if diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(resdto.BatchResponse{}, "UpdatedAt")); diff != "" {
			s.T().Errorf("Batch response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: invalid ids", func() {
		for _, id := range []string{"abc", "0", "-7", "99999999999999999999"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/batches/"+id, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid batch id")
		}
	})

	s.Run("error: unknown batch", func() {
		s.mockQueries.EXPECT().GetBatch(gomock.Any(), int64(404)).Return(nil, errs.ErrBatchNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/batches/404", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Batch not found")
	})
}

// ================================================================================
// TestListVerifications
// ================================================================================

func (s *BatchHandlerTestSuite) TestListVerifications() {
	url := "/batches/7/verifications"
	views := []*queries.VerificationView{
		builder.NewVerificationBuilder().WithRequestID("req_2").BuildView(),
		builder.NewVerificationBuilder().WithRequestID("req_1").BuildView(),
	}

	s.Run("success: first page with next cursor", func() {
		s.mockQueries.EXPECT().ListVerifications(gomock.Any(), int64(7), (*queries.Cursor)(nil), 2).
			Return(views, &queries.Cursor{After: "next-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2", nil, "")

		var body resdto.VerificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal("req_2", body.Items[0].RequestID)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-token", *body.NextCursor)
	})

	s.Run("success: cursor is forwarded and limit is clamped", func() {
		s.mockQueries.EXPECT().ListVerifications(gomock.Any(), int64(7), &queries.Cursor{After: "abc"}, queries.MaxListLimit).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc&limit=5000", nil, "")

		var body resdto.VerificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Nil(body.NextCursor)
	})

	s.Run("error: invalid limit", func() {
		for _, limit := range []string{"0", "-1", "ten"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit="+limit, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
		}
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().ListVerifications(gomock.Any(), int64(7), gomock.Any(), 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: store failure", func() {
		s.mockQueries.EXPECT().ListVerifications(gomock.Any(), int64(7), gomock.Any(), 20).
			Return(nil, nil, errs.Mark(errors.New("timeout"), errs.ErrPersistence)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
