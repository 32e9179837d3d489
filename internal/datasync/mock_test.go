package datasync

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/visionpay/fieldops/pkg/walker"
)

type mockWalker struct {
	mock.Mock
}

func (m *mockWalker) GetDashboardStats(ctx context.Context) (*walker.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walker.Stats), args.Error(1)
}

func (m *mockWalker) GetOfficers(ctx context.Context) ([]walker.Officer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]walker.Officer), args.Error(1)
}

func (m *mockWalker) GetMembers(ctx context.Context) ([]walker.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]walker.Member), args.Error(1)
}

func (m *mockWalker) AnalyzeRiskZones(ctx context.Context) ([]walker.RiskZone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]walker.RiskZone), args.Error(1)
}

func (m *mockWalker) AddOfficer(ctx context.Context, req walker.AddOfficerRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockWalker) AddMember(ctx context.Context, req walker.AddMemberRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockWalker) AssignMembersToOfficers(ctx context.Context, radiusKM int) (*walker.AssignResult, error) {
	args := m.Called(ctx, radiusKM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walker.AssignResult), args.Error(1)
}

func (m *mockWalker) OptimizeRoute(ctx context.Context, officerID int) (*walker.Route, error) {
	args := m.Called(ctx, officerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walker.Route), args.Error(1)
}

func (m *mockWalker) GenerateAISummary(ctx context.Context) (*walker.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*walker.Summary), args.Error(1)
}

func (m *mockWalker) RecordPayment(ctx context.Context, req walker.PaymentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
