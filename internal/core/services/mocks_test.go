package services_test

import (
	"context"
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindBalance(ctx context.Context, accountID string) (*domain.CreditAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

func (m *MockLedgerRepository) CreateBalance(ctx context.Context, account domain.CreditAccount, entry domain.LedgerEntry) error {
	args := m.Called(ctx, account, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) SwapBalance(ctx context.Context, account domain.CreditAccount, expectedVersion int64, entry domain.LedgerEntry) error {
	args := m.Called(ctx, account, expectedVersion, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, accountID string, limit int, offset int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// MockSplitRepository is a mock type for the SplitRepositoryFacade interface
type MockSplitRepository struct {
	mock.Mock
}

func (m *MockSplitRepository) FindCollaboratorsByBeatID(ctx context.Context, beatID string) ([]domain.BeatCollaborator, error) {
	args := m.Called(ctx, beatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BeatCollaborator), args.Error(1)
}

func (m *MockSplitRepository) SaveSplits(ctx context.Context, splits []domain.SaleSplit) error {
	args := m.Called(ctx, splits)
	return args.Error(0)
}

func (m *MockSplitRepository) MarkSplitCredited(ctx context.Context, splitID string) error {
	args := m.Called(ctx, splitID)
	return args.Error(0)
}

func (m *MockSplitRepository) FindSplitsBySaleID(ctx context.Context, saleID string) ([]domain.SaleSplit, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleSplit), args.Error(1)
}

// MockBoostRepository is a mock type for the BoostRepositoryFacade interface
type MockBoostRepository struct {
	mock.Mock
}

func (m *MockBoostRepository) FindBoostByID(ctx context.Context, boostID string) (*domain.Boost, error) {
	args := m.Called(ctx, boostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boost), args.Error(1)
}

func (m *MockBoostRepository) FindBoostByItemID(ctx context.Context, itemID string) (*domain.Boost, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boost), args.Error(1)
}

func (m *MockBoostRepository) ListActiveBoosts(ctx context.Context, now time.Time, limit int, offset int) ([]domain.Boost, error) {
	args := m.Called(ctx, now, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Boost), args.Error(1)
}

func (m *MockBoostRepository) SaveBoost(ctx context.Context, boost domain.Boost) error {
	args := m.Called(ctx, boost)
	return args.Error(0)
}

func (m *MockBoostRepository) SwapBoost(ctx context.Context, boost domain.Boost, expectedVersion int64) error {
	args := m.Called(ctx, boost, expectedVersion)
	return args.Error(0)
}

func (m *MockBoostRepository) DeleteBoost(ctx context.Context, boostID string) error {
	args := m.Called(ctx, boostID)
	return args.Error(0)
}

// MockSubscriptionRepository is a mock type for the SubscriptionRepositoryFacade interface
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindSubscriptionByAccountID(ctx context.Context, accountID string) (*domain.Subscription, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) UpsertSubscription(ctx context.Context, sub domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

// MockPlanReader is a mock type for the PlanReader interface
type MockPlanReader struct {
	mock.Mock
}

func (m *MockPlanReader) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanReader) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

// MockCreditWriter is a mock type for the CreditWriterSvc interface
type MockCreditWriter struct {
	mock.Mock
}

func (m *MockCreditWriter) Debit(ctx context.Context, accountID string, amount int64, reason string, source domain.LedgerSource) (*domain.CreditAccount, error) {
	args := m.Called(ctx, accountID, amount, reason, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

func (m *MockCreditWriter) Credit(ctx context.Context, accountID string, amount int64, reason string, source domain.LedgerSource, meta map[string]any) (*domain.CreditAccount, error) {
	args := m.Called(ctx, accountID, amount, reason, source, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}

func (m *MockCreditWriter) ResetToMonthlyAllowance(ctx context.Context, accountID string, plan domain.Plan) (*domain.CreditAccount, error) {
	args := m.Called(ctx, accountID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAccount), args.Error(1)
}
