package cmd

import (
	"log/slog"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"gorm.io/gorm"

	httpadapter "candydelivery/internal/adapters/in/http"
	"candydelivery/internal/adapters/out/postgres"
	"candydelivery/internal/core/application/usecases/commands"
	"candydelivery/internal/core/application/usecases/queries"
	"candydelivery/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock returns a copy of the root whose assign handler stamps rounds with now.
func (c CompositionRoot) WithClock(now func() time.Time) CompositionRoot {
	c.now = now
	return c
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierCommandHandler() commands.UpdateCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrdersCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRevalidateCourierCommandHandler() commands.RevalidateCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRevalidateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCourierQueryHandler() queries.GetCourierQueryHandler {
	return queries.NewGetCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCouriersWithPendingOrdersQueryHandler() queries.GetCouriersWithPendingOrdersQueryHandler {
	return queries.NewGetCouriersWithPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer(doc *openapi3.T) *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateCourierCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateCourierCommandHandler(),
		c.CreateAssignOrdersCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetCourierQueryHandler(),
		httpadapter.NewSchemaValidator(doc),
		c.logger.With("component", "http"),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetCouriersWithPendingOrdersQueryHandler(),
		c.CreateRevalidateCourierCommandHandler(),
		c.config.RevalidationSchedule,
		c.logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
