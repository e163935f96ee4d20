package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type mockRequestRepo struct {
	listFn       func(ctx context.Context, page, pageSize int) ([]*servicerequest.ServiceRequest, int64, error)
	getByIDFn    func(ctx context.Context, id string) (*servicerequest.ServiceRequest, error)
	saveFn       func(ctx context.Context, sr *servicerequest.ServiceRequest) error
	updateFn     func(ctx context.Context, sr *servicerequest.ServiceRequest) (bool, error)
	replaceAllFn func(ctx context.Context, requests []*servicerequest.ServiceRequest) error
	countFn      func(ctx context.Context) (int64, error)
}

func (m *mockRequestRepo) List(ctx context.Context, page, pageSize int) ([]*servicerequest.ServiceRequest, int64, error) {
	return m.listFn(ctx, page, pageSize)
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRequestRepo) Save(ctx context.Context, sr *servicerequest.ServiceRequest) error {
	return m.saveFn(ctx, sr)
}

func (m *mockRequestRepo) Update(ctx context.Context, sr *servicerequest.ServiceRequest) (bool, error) {
	return m.updateFn(ctx, sr)
}

func (m *mockRequestRepo) ReplaceAll(ctx context.Context, requests []*servicerequest.ServiceRequest) error {
	return m.replaceAllFn(ctx, requests)
}

func (m *mockRequestRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockGenerator struct {
	serviceRequestsFn func(count int) ([]*servicerequest.ServiceRequest, error)
}

func (m *mockGenerator) ServiceRequests(count int) ([]*servicerequest.ServiceRequest, error) {
	return m.serviceRequestsFn(count)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
