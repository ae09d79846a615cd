package transcribe

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Transcribe(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}
