//go:build unit

package commands_test

import (
	"context"
	"time"

	"coffee-verifier/internal/pkg/clock"
	"coffee-verifier/internal/usecase/shared"
	commandsmock "coffee-verifier/tests/mock/commands"
	sharedmock "coffee-verifier/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type fixedIDs string

func (f fixedIDs) NewRequestID() string { return string(f) }

// commandsFixture wires every port of the command layer to gomock doubles.
type commandsFixture struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	requests *sharedmock.MockVerificationRequestRepository
	batches  *sharedmock.MockBatchRepository
	oracle   *commandsmock.MockOracleClient
	metrics  *commandsmock.MockMetrics
	clock    *clock.MockClock
}

func (s *commandsFixture) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.requests = sharedmock.NewMockVerificationRequestRepository(s.ctrl)
	s.batches = sharedmock.NewMockBatchRepository(s.ctrl)
	s.oracle = commandsmock.NewMockOracleClient(s.ctrl)
	s.metrics = commandsmock.NewMockMetrics(s.ctrl)
	s.clock = clock.NewMockClock(baseTime)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Requests().Return(s.requests).AnyTimes()
	s.tx.EXPECT().Batches().Return(s.batches).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *commandsFixture) TearDownTest() {
	s.ctrl.Finish()
}

// expectTx runs the transactional callback against the mocked Tx, returning what it returns.
func (s *commandsFixture) expectTx() *gomock.Call {
	return s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}
