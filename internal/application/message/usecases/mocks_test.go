package usecases

import (
	"context"

	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type mockMessageRepo struct {
	listFn        func(ctx context.Context, filter message.Filter, page, pageSize int) ([]*message.ClientMessage, int64, error)
	getByIDFn     func(ctx context.Context, id string) (*message.ClientMessage, error)
	saveFn        func(ctx context.Context, m *message.ClientMessage) error
	updateFn      func(ctx context.Context, id string, patch message.Patch) (bool, error)
	batchUpdateFn func(ctx context.Context, ids []string, patch message.Patch) (int64, error)
	searchFn      func(ctx context.Context, query string, page, pageSize int) ([]*message.ClientMessage, int64, error)
	countUnreadFn func(ctx context.Context) (int64, error)
	byServiceFn   func(ctx context.Context, serviceRequestID string) ([]*message.ClientMessage, error)
	replaceAllFn  func(ctx context.Context, msgs []*message.ClientMessage) error
	countFn       func(ctx context.Context) (int64, error)
}

func (m *mockMessageRepo) List(ctx context.Context, filter message.Filter, page, pageSize int) ([]*message.ClientMessage, int64, error) {
	return m.listFn(ctx, filter, page, pageSize)
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id string) (*message.ClientMessage, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockMessageRepo) Save(ctx context.Context, msg *message.ClientMessage) error {
	return m.saveFn(ctx, msg)
}

func (m *mockMessageRepo) Update(ctx context.Context, id string, patch message.Patch) (bool, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockMessageRepo) BatchUpdate(ctx context.Context, ids []string, patch message.Patch) (int64, error) {
	return m.batchUpdateFn(ctx, ids, patch)
}

func (m *mockMessageRepo) Search(ctx context.Context, query string, page, pageSize int) ([]*message.ClientMessage, int64, error) {
	return m.searchFn(ctx, query, page, pageSize)
}

func (m *mockMessageRepo) CountUnread(ctx context.Context) (int64, error) {
	return m.countUnreadFn(ctx)
}

func (m *mockMessageRepo) ListByRelatedService(ctx context.Context, serviceRequestID string) ([]*message.ClientMessage, error) {
	return m.byServiceFn(ctx, serviceRequestID)
}

func (m *mockMessageRepo) ReplaceAll(ctx context.Context, msgs []*message.ClientMessage) error {
	return m.replaceAllFn(ctx, msgs)
}

func (m *mockMessageRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockThreadRepo struct {
	listFn       func(ctx context.Context, page, pageSize int) ([]*message.MessageThread, int64, error)
	getByIDFn    func(ctx context.Context, id string) (*message.MessageThread, error)
	createFn     func(ctx context.Context, t *message.MessageThread) error
	appendFn     func(ctx context.Context, threadID string, tm message.ThreadMessage) (*message.ThreadMessage, bool, error)
	updateFn     func(ctx context.Context, id string, patch message.ThreadPatch) (bool, error)
	markReadFn   func(ctx context.Context, threadID, messageID string) (bool, error)
	replaceAllFn func(ctx context.Context, threads []*message.MessageThread) error
	countFn      func(ctx context.Context) (int64, error)
}

func (m *mockThreadRepo) List(ctx context.Context, page, pageSize int) ([]*message.MessageThread, int64, error) {
	return m.listFn(ctx, page, pageSize)
}

func (m *mockThreadRepo) GetByID(ctx context.Context, id string) (*message.MessageThread, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockThreadRepo) Create(ctx context.Context, t *message.MessageThread) error {
	return m.createFn(ctx, t)
}

func (m *mockThreadRepo) AppendMessage(ctx context.Context, threadID string, tm message.ThreadMessage) (*message.ThreadMessage, bool, error) {
	return m.appendFn(ctx, threadID, tm)
}

func (m *mockThreadRepo) Update(ctx context.Context, id string, patch message.ThreadPatch) (bool, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockThreadRepo) MarkMessageRead(ctx context.Context, threadID, messageID string) (bool, error) {
	return m.markReadFn(ctx, threadID, messageID)
}

func (m *mockThreadRepo) ReplaceAll(ctx context.Context, threads []*message.MessageThread) error {
	return m.replaceAllFn(ctx, threads)
}

func (m *mockThreadRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
