package service

import (
	"context"
	"net/url"
	"time"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockDirectoryRepository struct {
	mock.Mock
}

func (m *MockDirectoryRepository) ListPeople(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockDirectoryRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) FetchReport(ctx context.Context, path string, params url.Values) (*domain.Report, error) {
	args := m.Called(ctx, path, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepository) FetchTimeWorked(ctx context.Context, day time.Time) (*domain.Report, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

type MockOverworkService struct {
	mock.Mock
}

func (m *MockOverworkService) Run(ctx context.Context, now time.Time, opts RunOptions) (*RunResult, error) {
	args := m.Called(ctx, now, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RunResult), args.Error(1)
}
