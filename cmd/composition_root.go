package cmd

import (
	"log/slog"

	"swiftdrop/internal/adapters/out/geo"
	"swiftdrop/internal/adapters/out/memory"
	"swiftdrop/internal/adapters/out/payments"
	"swiftdrop/internal/adapters/out/postgres"
	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	draftStore ports.DraftStore
	geocoder   ports.Geocoder
	authorizer ports.PaymentAuthorizer
	pricer     services.Pricer

	config Config
	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		draftStore: memory.NewInMemoryDraftStore(config.DraftTTL),
		geocoder:   geo.NewOpenCageClient(config.OpenCageAPIKey, logger),
		authorizer: payments.NewCVVAuthorizer(logger),
		pricer:     services.NewPricer(),
		config:     config,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCalculateQuoteCommandHandler() commands.CalculateQuoteCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCalculateQuoteCommandHandler(f, c.geocoder, c.pricer, c.logger)
}

func (c *CompositionRoot) CreateStartCheckoutCommandHandler() commands.StartCheckoutCommandHandler {
	var f commands.CheckoutStartUoWFactory = FuncCheckoutStartUoWFactory(func() commands.CheckoutStartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartCheckoutCommandHandler(f, c.draftStore, c.geocoder, c.pricer, c.logger)
}

func (c *CompositionRoot) CreateSubmitContactCommandHandler() commands.SubmitContactCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitContactCommandHandler(f, c.draftStore, c.logger)
}

func (c *CompositionRoot) CreateSubmitPackagingCommandHandler() commands.SubmitPackagingCommandHandler {
	return commands.NewSubmitPackagingCommandHandler(c.draftStore)
}

func (c *CompositionRoot) CreateSubmitPaymentCommandHandler() *commands.SubmitPaymentCommandHandler {
	var f commands.CommitUoWFactory = FuncCommitUoWFactory(func() commands.CommitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPaymentCommandHandler(f, c.draftStore, c.authorizer, c.logger)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateEditShipmentDetailsCommandHandler() commands.EditShipmentDetailsCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditShipmentDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.draftStore, c.config.DraftTTL, c.logger)
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncCheckoutStartUoWFactory func() commands.CheckoutStartUoW

func (f FuncCheckoutStartUoWFactory) Create() commands.CheckoutStartUoW {
	return f()
}

type FuncContactUoWFactory func() commands.ContactUoW

func (f FuncContactUoWFactory) Create() commands.ContactUoW {
	return f()
}

type FuncCommitUoWFactory func() commands.CommitUoW

func (f FuncCommitUoWFactory) Create() commands.CommitUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
