package handlers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/handlers"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CreditService ---
type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) EnsureAccount(ctx context.Context, accountID string) (*domain.CreditAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

func (m *MockCreditService) ListEntries(ctx context.Context, accountID string, limit int, offset int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockCreditService) Debit(ctx context.Context, accountID string, amount int64, reason string, source domain.LedgerSource) (*domain.CreditAccount, error) {
	args := m.Called(ctx, accountID, amount, reason, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

func (m *MockCreditService) Credit(ctx context.Context, accountID string, amount int64, reason string, source domain.LedgerSource, meta map[string]any) (*domain.CreditAccount, error) {
	args := m.Called(ctx, accountID, amount, reason, source, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

func (m *MockCreditService) ResetToMonthlyAllowance(ctx context.Context, accountID string, plan domain.Plan) (*domain.CreditAccount, error) {
	args := m.Called(ctx, accountID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

var _ portssvc.CreditSvcFacade = (*MockCreditService)(nil)

// --- Mock SplitService ---
type MockSplitService struct {
	mock.Mock
}

func (m *MockSplitService) DistributeSale(ctx context.Context, sale domain.Sale) (*domain.SplitOutcome, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SplitOutcome), args.Error(1)
}

func (m *MockSplitService) GetSaleSplits(ctx context.Context, saleID string) ([]domain.SaleSplit, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleSplit), args.Error(1)
}

var _ portssvc.SplitSvcFacade = (*MockSplitService)(nil)

// --- Mock BoostService ---
type MockBoostService struct {
	mock.Mock
}

func (m *MockBoostService) CreateBoost(ctx context.Context, itemID string, ownerID string, days int) (*domain.Boost, error) {
	args := m.Called(ctx, itemID, ownerID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boost), args.Error(1)
}

func (m *MockBoostService) ActivateOrExtendBoost(ctx context.Context, itemID string, ownerID string, tier int) (*domain.Boost, error) {
	args := m.Called(ctx, itemID, ownerID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boost), args.Error(1)
}

func (m *MockBoostService) PauseBoost(ctx context.Context, boostID string, callerID string) (*domain.Boost, error) {
	args := m.Called(ctx, boostID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boost), args.Error(1)
}

func (m *MockBoostService) DeleteBoost(ctx context.Context, boostID string) error {
	args := m.Called(ctx, boostID)
	return args.Error(0)
}

func (m *MockBoostService) ListActiveBoosts(ctx context.Context, limit int, offset int) ([]domain.Boost, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Boost), args.Error(1)
}

var _ portssvc.BoostSvcFacade = (*MockBoostService)(nil)

// --- Mock SubscriptionService ---
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) ComputePeriodEnd(plan domain.Plan, now time.Time) time.Time {
	args := m.Called(plan, now)
	return args.Get(0).(time.Time)
}

func (m *MockSubscriptionService) SyncRenewal(ctx context.Context, accountID string, planID string, providerSubscriptionID string) (*domain.Subscription, error) {
	args := m.Called(ctx, accountID, planID, providerSubscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) CancelAtPeriodEnd(ctx context.Context, accountID string) (*domain.Subscription, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetSubscription(ctx context.Context, accountID string) (*domain.Subscription, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

var _ portssvc.SubscriptionSvcFacade = (*MockSubscriptionService)(nil)

// --- Shared router setup ---

type testMocks struct {
	credit       *MockCreditService
	split        *MockSplitService
	boost        *MockBoostService
	subscription *MockSubscriptionService
}

// newTestRouter builds a gin engine with all routes registered against mock
// services, mirroring the production middleware order minus infra concerns.
func newTestRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)

	mocks := &testMocks{
		credit:       new(MockCreditService),
		split:        new(MockSplitService),
		boost:        new(MockBoostService),
		subscription: new(MockSubscriptionService),
	}

	cfg := &config.Config{
		IsProduction:    true,
		PlatformFeeRate: decimal.RequireFromString("0.10"),
	}

	container := &portssvc.ServiceContainer{
		Credit:       mocks.credit,
		Split:        mocks.split,
		Boost:        mocks.boost,
		Subscription: mocks.subscription,
	}

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, container)
	return r, mocks
}
