package heartrate_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/fitrelay/pkg/fitbit"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) AuthCodeURL() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockProvider) ExchangeCode(ctx context.Context, code string) (fitbit.Token, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(fitbit.Token), args.Error(1)
}

func (m *MockProvider) IntradayHeartRate(ctx context.Context, accessToken, date, startTime, endTime string) ([]fitbit.HeartRateSample, error) {
	args := m.Called(ctx, accessToken, date, startTime, endTime)
	if v := args.Get(0); v != nil {
		return v.([]fitbit.HeartRateSample), args.Error(1)
	}
	return nil, args.Error(1)
}
