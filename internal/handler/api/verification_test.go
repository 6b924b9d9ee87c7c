//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"coffee-verifier/internal/handler"
	"coffee-verifier/internal/handler/api"
	resdto "coffee-verifier/internal/handler/dto/response"
	"coffee-verifier/internal/handler/middleware"
	"coffee-verifier/internal/pkg/errs"
	"coffee-verifier/internal/usecase/commands"
	"coffee-verifier/tests/common/builder"
	"coffee-verifier/tests/common/httptest"
	"coffee-verifier/tests/common/testutil"
	commandsmock "coffee-verifier/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	submittedAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	completedAt = submittedAt.Add(95 * time.Second)
)

type VerificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVerificationCommands
	mockResolver *commandsmock.MockStatusResolver
	handler      *api.VerificationHandler
}

func (s *VerificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(handler.RegisterValidators())
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVerificationCommands(s.mockCtrl)
	s.mockResolver = commandsmock.NewMockStatusResolver(s.mockCtrl)
	s.handler = api.NewVerificationHandler(s.mockCommands, s.mockResolver)

	// Setup routes
	s.router.POST("/oracle/verify", s.handler.Verify)
	s.router.GET("/oracle/status/:requestId", s.handler.Status)
	s.router.GET("/oracle/status", s.handler.Status)
	s.router.POST("/sync-verification", s.handler.Sync)
}

func (s *VerificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVerificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerificationHandlerTestSuite))
}

type testCaseVerification struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestVerify
// ================================================================================

func (s *VerificationHandlerTestSuite) TestVerify() {
	url := "/oracle/verify"

	reqBody := builder.NewVerificationBuilder().BuildVerifyRequestDTO()
	submitted := builder.NewVerificationBuilder().WithSubmittedAt(submittedAt).MustBuildDomain()
	expectedResult := &commands.SubmitResult{Request: submitted, EstimatedCompletion: submittedAt.Add(90 * time.Second)}

	s.Run("success: returns 200 with the pending request", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), commands.SubmitParams{BatchID: 7, VerificationType: "reserve"}).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")

		var body resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(builder.DefaultRequestID, body.RequestID)
		s.Equal("pending", body.Status)
		s.Equal(int64(7), body.BatchID)
		s.Equal(submittedAt.Add(90*time.Second), body.EstimatedCompletionTime.UTC())
		s.Require().NotNil(body.TransactionHash)
		s.Equal(builder.DefaultTransactionHash, *body.TransactionHash)
	})

	s.Run("success: verificationType defaults to reserve", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), commands.SubmitParams{BatchID: 7, VerificationType: "reserve"}).
			Return(expectedResult, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("verificationType", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	validation := []testCaseVerification{
		{name: "batchId boundary OK (1)", mutate: testutil.Field("batchId", 1), expectCode: http.StatusOK},
		{name: "batchId zero", mutate: testutil.Field("batchId", 0), expectCode: http.StatusBadRequest},
		{name: "batchId negative", mutate: testutil.Field("batchId", -4), expectCode: http.StatusBadRequest},
		{name: "batchId not a number", mutate: testutil.Field("batchId", "seven"), expectCode: http.StatusBadRequest},
		{name: "missing field: batchId (required)", mutate: testutil.Field("batchId", nil), expectCode: http.StatusBadRequest},
		{name: "verificationType inventory", mutate: testutil.Field("verificationType", "inventory"), expectCode: http.StatusOK},
		{name: "verificationType unknown", mutate: testutil.Field("verificationType", "audit"), expectCode: http.StatusBadRequest},
		{name: "recipient valid address", mutate: testutil.Field("recipient", "0x52908400098527886E0F7030069857D2E4169EE7"), expectCode: http.StatusOK},
		{name: "recipient malformed", mutate: testutil.Field("recipient", "0x1234"), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(expectedResult, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"batchId": 7`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
			retryable      bool
		}{
			{name: "validation", commandsError: errs.Mark(errors.New("bad type"), errs.ErrValidation), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "unknown batch", commandsError: errs.ErrBatchNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Batch not found"},
			{name: "oracle timeout", commandsError: errs.Mark(errors.New("deadline"), errs.ErrOracleTimeout), expectedStatus: http.StatusGatewayTimeout, expectedMsg: "Oracle request timed out", retryable: true},
			{name: "oracle failure", commandsError: errs.Mark(errors.New("502"), errs.ErrTransientOracle), expectedStatus: http.StatusInternalServerError, expectedMsg: "Oracle request failed", retryable: true},
			{name: "persistence", commandsError: errs.Mark(errors.New("disk full"), errs.ErrPersistence), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to persist", retryable: true},
			{name: "unknown error", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to submit verification request"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)

				var body struct {
					Detail struct {
						Retryable bool `json:"retryable"`
					} `json:"detail"`
				}
				s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
				s.Equal(tc.retryable, body.Detail.Retryable)
			})
		}
	})
}

// ================================================================================
// TestStatus
// ================================================================================

func (s *VerificationHandlerTestSuite) TestStatus() {
	url := "/oracle/status/" + builder.DefaultRequestID

	s.Run("success: pending request keeps null fields", func() {
		pending := builder.NewVerificationBuilder().WithSubmittedAt(submittedAt).MustBuildDomain()
		s.mockResolver.EXPECT().Resolve(gomock.Any(), builder.DefaultRequestID).Return(pending, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var raw map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &raw)
		s.Equal("pending", raw["status"])
		s.Contains(raw, "result")
		s.Nil(raw["result"])
		s.Contains(raw, "completedAt")
		s.Nil(raw["completedAt"])
		s.Contains(raw, "error")
	})

	s.Run("success: fulfilled request carries its result", func() {
		done := builder.NewVerificationBuilder().WithSubmittedAt(submittedAt).AsFulfilled(completedAt).MustBuildDomain()
		s.mockResolver.EXPECT().Resolve(gomock.Any(), builder.DefaultRequestID).Return(done, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("fulfilled", body.Status)
		s.Require().NotNil(body.CompletedAt)
		s.Equal(completedAt, body.CompletedAt.UTC())
		s.Require().NotNil(body.Result)
		s.True(body.Result.Verified)
		s.Equal("250g", body.Result.VerifiedPackaging)
		s.Equal(int64(640), body.Result.VerifiedQuantity)
	})

	s.Run("error: unknown request id", func() {
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "req_missing").Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/oracle/status/req_missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Verification request not found")
	})

	s.Run("error: missing request id", func() {
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "").
			Return(nil, errs.Mark(errors.New("request id cannot be empty"), errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/oracle/status", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: store failure", func() {
		s.mockResolver.EXPECT().Resolve(gomock.Any(), builder.DefaultRequestID).
			Return(nil, errs.Mark(errors.New("connection reset"), errs.ErrPersistence)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// TestSync
// ================================================================================

func (s *VerificationHandlerTestSuite) TestSync() {
	url := "/sync-verification"

	fulfilled := builder.NewVerificationBuilder().WithSubmittedAt(submittedAt).AsFulfilled(completedAt)
	reqBody := fulfilled.BuildSyncRequestDTO()

	s.Run("success: completed outcome creates the request and verifies the batch", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.SyncParams) (*commands.SyncResult, error) {
				s.Equal("completed", p.Status)
				s.Equal(builder.DefaultRequestID, p.RequestID)
				s.Require().NotNil(p.Results)
				s.True(p.Results.Verified)
				return &commands.SyncResult{Request: fulfilled.MustBuildDomain(), Created: true, Changed: true, BatchUpdated: true}, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("status", "completed"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		var body resdto.SyncVerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.True(body.Created)
		s.True(body.BatchUpdated)
		s.Equal("Verification request recorded and batch marked verified", body.Message)
		s.Require().NotNil(body.VerificationRequest)
		s.Equal("fulfilled", body.VerificationRequest.Status)
	})

	s.Run("success: repeated delivery reports no change", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any(), gomock.Any()).
			Return(&commands.SyncResult{Request: fulfilled.MustBuildDomain()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SyncVerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Created)
		s.Equal("Verification request already up to date", body.Message)
	})

	validation := []testCaseVerification{
		{name: "missing field: requestId (required)", mutate: testutil.Field("requestId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: batchId (required)", mutate: testutil.Field("batchId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: status (required)", mutate: testutil.Field("status", nil), expectCode: http.StatusBadRequest},
		{name: "verificationType unknown", mutate: testutil.Field("verificationType", "audit"), expectCode: http.StatusBadRequest},
		{name: "negative quantity", mutate: testutil.Field("verificationResults", map[string]any{"verifiedQuantity": -1}), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "status flip", commandsError: errs.Mark(errors.New("request is fulfilled"), errs.ErrStatusConflict), expectedStatus: http.StatusConflict, expectedMsg: "already resolved"},
			{name: "unknown batch", commandsError: errs.ErrBatchNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Batch not found"},
			{name: "bad status", commandsError: errs.Mark(errors.New("status must be one of"), errs.ErrValidation), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "persistence", commandsError: errs.Mark(errors.New("deadlock"), errs.ErrPersistence), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to persist"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
