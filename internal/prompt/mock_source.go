package prompt

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of Source using testify/mock.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
