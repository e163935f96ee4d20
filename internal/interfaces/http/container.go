package http

import (
	"math/rand"

	msgapp "github.com/esit-pro/service-desk/internal/application/message"
	srapp "github.com/esit-pro/service-desk/internal/application/servicerequest"
	"github.com/esit-pro/service-desk/internal/application/triage"
	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/infrastructure/config"
	"github.com/esit-pro/service-desk/internal/infrastructure/database"
	"github.com/esit-pro/service-desk/internal/infrastructure/memstore"
	"github.com/esit-pro/service-desk/internal/infrastructure/mockdata"
	"github.com/esit-pro/service-desk/internal/infrastructure/repository"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

// Container holds the wired repositories and application services. The
// storage driver decides whether the repos are in-memory stores or the
// SQLite-backed ones; everything above them is identical.
type Container struct {
	RequestRepo servicerequest.Repository
	MessageRepo message.Repository
	ThreadRepo  message.ThreadRepository

	RequestService *srapp.Service
	MessageService *msgapp.Service
	TriageService  *triage.Service

	Seeder *mockdata.Seeder
}

// NewContainer wires repositories and services for the configured
// storage driver. The sqlite driver requires database.Init to have been
// called.
func NewContainer(cfg *config.Config, log logger.Interface) *Container {
	c := &Container{}

	switch cfg.Storage.Driver {
	case constants.StorageDriverSQLite:
		db := database.Get()
		c.RequestRepo = repository.NewServiceRequestRepository(db)
		c.MessageRepo = repository.NewMessageRepository(db)
		c.ThreadRepo = repository.NewThreadRepository(db)
	default:
		c.RequestRepo = memstore.NewServiceRequestStore(cfg.Latency)
		c.MessageRepo = memstore.NewMessageStore(cfg.Latency)
		c.ThreadRepo = memstore.NewThreadStore(cfg.Latency)
	}

	var rng *rand.Rand
	if cfg.Seed.RandomSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed.RandomSeed))
	}
	generator := mockdata.NewGenerator(rng)

	c.RequestService = srapp.NewService(c.RequestRepo, generator, log)
	c.MessageService = msgapp.NewService(c.MessageRepo, c.ThreadRepo, log)
	c.TriageService = triage.NewService(c.MessageRepo, c.RequestRepo, log)
	c.Seeder = mockdata.NewSeeder(c.RequestRepo, c.MessageRepo, c.ThreadRepo, log)

	return c
}
