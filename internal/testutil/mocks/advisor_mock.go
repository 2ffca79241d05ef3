package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAdvisor is a mock implementation of advisor.Advisor
type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
