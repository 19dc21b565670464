package mocks

import (
	"context"

	"helloapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockTextService struct {
	mock.Mock
}

func (m *MockTextService) Process(ctx context.Context, text string) model.Transformation {
	args := m.Called(ctx, text)
	return args.Get(0).(model.Transformation)
}

func (m *MockTextService) GetName(ctx context.Context, name string) model.Transformation {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Transformation)
}

func (m *MockTextService) Greeting(ctx context.Context) model.Greeting {
	args := m.Called(ctx)
	return args.Get(0).(model.Greeting)
}
