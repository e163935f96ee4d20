// Package message wires the client message and thread use cases behind
// one application service consumed by the interface layers.
package message

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/application/message/usecases"
	domain "github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type Service struct {
	list       *usecases.ListMessagesUseCase
	get        *usecases.GetMessageUseCase
	create     *usecases.CreateMessageUseCase
	update     *usecases.UpdateMessageUseCase
	batch      *usecases.BatchUpdateUseCase
	search     *usecases.SearchMessagesUseCase
	unread     *usecases.UnreadCountUseCase
	related    *usecases.RelatedMessagesUseCase
	listThread *usecases.ListThreadsUseCase
	getThread  *usecases.GetThreadUseCase
	newThread  *usecases.CreateThreadUseCase
	reply      *usecases.AddThreadMessageUseCase
	threadRead *usecases.MarkThreadMessageReadUseCase
	editThread *usecases.UpdateThreadUseCase
}

func NewService(messages domain.Repository, threads domain.ThreadRepository, logger logger.Interface) *Service {
	return &Service{
		list:       usecases.NewListMessagesUseCase(messages, logger),
		get:        usecases.NewGetMessageUseCase(messages, logger),
		create:     usecases.NewCreateMessageUseCase(messages, logger),
		update:     usecases.NewUpdateMessageUseCase(messages, logger),
		batch:      usecases.NewBatchUpdateUseCase(messages, logger),
		search:     usecases.NewSearchMessagesUseCase(messages, logger),
		unread:     usecases.NewUnreadCountUseCase(messages, logger),
		related:    usecases.NewRelatedMessagesUseCase(messages, logger),
		listThread: usecases.NewListThreadsUseCase(threads, logger),
		getThread:  usecases.NewGetThreadUseCase(threads, logger),
		newThread:  usecases.NewCreateThreadUseCase(threads, logger),
		reply:      usecases.NewAddThreadMessageUseCase(threads, logger),
		threadRead: usecases.NewMarkThreadMessageReadUseCase(threads, logger),
		editThread: usecases.NewUpdateThreadUseCase(threads, logger),
	}
}

func (s *Service) List(ctx context.Context, query usecases.ListMessagesQuery) (*dto.ListMessagesResult, error) {
	return s.list.Execute(ctx, query)
}

func (s *Service) Get(ctx context.Context, id string) (*dto.ClientMessageDTO, error) {
	return s.get.Execute(ctx, id)
}

func (s *Service) Create(ctx context.Context, cmd usecases.CreateMessageCommand) (*dto.ClientMessageDTO, error) {
	return s.create.Execute(ctx, cmd)
}

func (s *Service) MarkRead(ctx context.Context, id string) (bool, error) {
	return s.update.MarkRead(ctx, id)
}

func (s *Service) SetFlag(ctx context.Context, id string, flagged bool) (bool, error) {
	return s.update.SetFlag(ctx, id, flagged)
}

func (s *Service) ChangeStatus(ctx context.Context, id, status string) (bool, error) {
	return s.update.ChangeStatus(ctx, id, status)
}

func (s *Service) Assign(ctx context.Context, id, assignedTo string) (bool, error) {
	return s.update.Assign(ctx, id, assignedTo)
}

func (s *Service) SetRelatedService(ctx context.Context, id, serviceRequestID string) (bool, error) {
	return s.update.SetRelatedService(ctx, id, serviceRequestID)
}

func (s *Service) BatchUpdate(ctx context.Context, cmd usecases.BatchUpdateCommand) (*usecases.BatchUpdateResult, error) {
	return s.batch.Execute(ctx, cmd)
}

func (s *Service) Search(ctx context.Context, query usecases.SearchMessagesQuery) (*dto.ListMessagesResult, error) {
	return s.search.Execute(ctx, query)
}

func (s *Service) UnreadCount(ctx context.Context) (*dto.UnreadCountResult, error) {
	return s.unread.Execute(ctx)
}

func (s *Service) ListByRelatedService(ctx context.Context, serviceRequestID string) ([]*dto.ClientMessageDTO, error) {
	return s.related.Execute(ctx, serviceRequestID)
}

func (s *Service) ListThreads(ctx context.Context, page, pageSize int) (*dto.ListThreadsResult, error) {
	return s.listThread.Execute(ctx, usecases.ListThreadsQuery{Page: page, PageSize: pageSize})
}

func (s *Service) GetThread(ctx context.Context, id string) (*dto.ThreadDTO, error) {
	return s.getThread.Execute(ctx, id)
}

func (s *Service) CreateThread(ctx context.Context, cmd usecases.CreateThreadCommand) (*dto.ThreadDTO, error) {
	return s.newThread.Execute(ctx, cmd)
}

func (s *Service) AddThreadMessage(ctx context.Context, cmd usecases.AddThreadMessageCommand) (*dto.ThreadMessageDTO, error) {
	return s.reply.Execute(ctx, cmd)
}

func (s *Service) MarkThreadMessageRead(ctx context.Context, threadID, messageID string) (bool, error) {
	return s.threadRead.Execute(ctx, threadID, messageID)
}

func (s *Service) SetThreadArchived(ctx context.Context, id string, archived bool) (bool, error) {
	return s.editThread.SetArchived(ctx, id, archived)
}

func (s *Service) SetThreadRelatedService(ctx context.Context, id, serviceRequestID string) (bool, error) {
	return s.editThread.SetRelatedService(ctx, id, serviceRequestID)
}
