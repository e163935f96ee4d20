// Package servicerequest wires the service request use cases behind one
// application service consumed by the interface layers.
package servicerequest

import (
	"context"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/dto"
	"github.com/esit-pro/service-desk/internal/application/servicerequest/usecases"
	domain "github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

type Service struct {
	list           *usecases.ListRequestsUseCase
	get            *usecases.GetRequestUseCase
	create         *usecases.CreateRequestUseCase
	changeStatus   *usecases.ChangeStatusUseCase
	changePriority *usecases.ChangePriorityUseCase
	assign         *usecases.AssignRequestUseCase
	logHours       *usecases.LogHoursUseCase
	addNote        *usecases.AddNoteUseCase
	regenerate     *usecases.RegenerateDataUseCase
}

func NewService(repo domain.Repository, generator usecases.RequestGenerator, logger logger.Interface) *Service {
	return &Service{
		list:           usecases.NewListRequestsUseCase(repo, logger),
		get:            usecases.NewGetRequestUseCase(repo, logger),
		create:         usecases.NewCreateRequestUseCase(repo, logger),
		changeStatus:   usecases.NewChangeStatusUseCase(repo, logger),
		changePriority: usecases.NewChangePriorityUseCase(repo, logger),
		assign:         usecases.NewAssignRequestUseCase(repo, logger),
		logHours:       usecases.NewLogHoursUseCase(repo, logger),
		addNote:        usecases.NewAddNoteUseCase(repo, logger),
		regenerate:     usecases.NewRegenerateDataUseCase(repo, generator, logger),
	}
}

func (s *Service) List(ctx context.Context, page, pageSize int) (*dto.ListServiceRequestsResult, error) {
	return s.list.Execute(ctx, usecases.ListRequestsQuery{Page: page, PageSize: pageSize})
}

func (s *Service) Get(ctx context.Context, id string) (*dto.ServiceRequestDTO, error) {
	return s.get.Execute(ctx, id)
}

func (s *Service) Create(ctx context.Context, cmd usecases.CreateRequestCommand) (*dto.ServiceRequestDTO, error) {
	return s.create.Execute(ctx, cmd)
}

func (s *Service) ChangeStatus(ctx context.Context, id, status string) (*dto.ServiceRequestDTO, error) {
	return s.changeStatus.Execute(ctx, usecases.ChangeStatusCommand{RequestID: id, Status: status})
}

func (s *Service) ChangePriority(ctx context.Context, id string, priority int) (*dto.ServiceRequestDTO, error) {
	return s.changePriority.Execute(ctx, usecases.ChangePriorityCommand{RequestID: id, Priority: priority})
}

func (s *Service) Assign(ctx context.Context, id, assignedTo string) (*dto.ServiceRequestDTO, error) {
	return s.assign.Execute(ctx, usecases.AssignRequestCommand{RequestID: id, AssignedTo: assignedTo})
}

func (s *Service) LogHours(ctx context.Context, id string, hours float64) (*dto.ServiceRequestDTO, error) {
	return s.logHours.Execute(ctx, usecases.LogHoursCommand{RequestID: id, Hours: hours})
}

func (s *Service) AddNote(ctx context.Context, id, note string) (*dto.ServiceRequestDTO, error) {
	return s.addNote.Execute(ctx, usecases.AddNoteCommand{RequestID: id, Note: note})
}

func (s *Service) Regenerate(ctx context.Context, count int) (*usecases.RegenerateDataResult, error) {
	return s.regenerate.Execute(ctx, usecases.RegenerateDataCommand{Count: count})
}
