package cmd

import (
	"log/slog"

	httpin "cargotracker/internal/adapters/in/http"
	"cargotracker/internal/adapters/out/geocache"
	"cargotracker/internal/adapters/out/nominatim"
	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/jobs"
	"cargotracker/internal/pkg/auth"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	hasher     ports.PasswordHasher
	tokens     *auth.JWTIssuer

	// memoryCache is nil when Redis backs the geocode cache; Redis expires
	// its own keys so no sweep job is needed.
	memoryCache *geocache.MemoryCache
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	var (
		cache       ports.GeocodeCache
		memoryCache *geocache.MemoryCache
	)
	if config.RedisAddr != "" {
		cache = geocache.NewRedisCache(redis.NewClient(&redis.Options{Addr: config.RedisAddr}), logger)
	} else {
		memoryCache = geocache.NewMemoryCache(config.GeocodeCacheMaxEntries)
		cache = memoryCache
	}

	geocoder, err := nominatim.NewClient(
		config.NominatimBaseURL, config.NominatimUserAgent, cache, config.GeocodeCacheTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	tokens, err := auth.NewJWTIssuer(config.JWTSecret, config.JWTTokenTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:    geocoder,
		hasher:      auth.NewBcryptHasher(config.BcryptCost),
		tokens:      tokens,
		memoryCache: memoryCache,
	}, nil
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	commandHandlers := httpin.CommandHandlers{
		RegisterShipment: c.CreateRegisterShipmentCommandHandler(),
		UpdateStatus:     c.CreateUpdateStatusCommandHandler(),
		UpdateLocation:   c.CreateUpdateLocationCommandHandler(),
		MarkDelivered:    c.CreateMarkDeliveredCommandHandler(),
		CancelShipment:   c.CreateCancelShipmentCommandHandler(),
		AddHistoryRecord: c.CreateAddHistoryRecordCommandHandler(),
		CreateClient:     c.CreateCreateClientCommandHandler(),
		UpdateClient:     c.CreateUpdateClientCommandHandler(),
		CreateOperator:   c.CreateCreateOperatorCommandHandler(),
		UpdateOperator:   c.CreateUpdateOperatorCommandHandler(),
		Login:            c.CreateLoginCommandHandler(),
	}

	queryHandlers := httpin.QueryHandlers{
		GetShipment:          c.CreateGetShipmentQueryHandler(),
		GetShipmentDetails:   c.CreateGetShipmentDetailsQueryHandler(),
		ListShipments:        c.CreateListShipmentsQueryHandler(),
		GetShipmentsByStatus: c.CreateGetShipmentsByStatusQueryHandler(),
		GetHistory:           c.CreateGetHistoryQueryHandler(),
		GetAllHistory:        c.CreateGetAllHistoryQueryHandler(),
		GetAllClients:        c.CreateGetAllClientsQueryHandler(),
		GetAllOperators:      c.CreateGetAllOperatorsQueryHandler(),
	}

	return httpin.NewServer(commandHandlers, queryHandlers, c.tokens)
}

// CreateJobManager returns the background job manager, or nil when the
// Redis cache is in use and there is nothing to schedule.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	if c.memoryCache == nil {
		return nil
	}
	return jobs.NewJobManager(c.memoryCache, logger)
}

func (c *CompositionRoot) CreateRegisterShipmentCommandHandler() commands.RegisterShipmentCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterShipmentCommandHandler(f, c.geocoder)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(c.trackingUoWFactory(), c.geocoder)
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.trackingUoWFactory(), c.geocoder)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.trackingUoWFactory())
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.trackingUoWFactory())
}

func (c *CompositionRoot) CreateAddHistoryRecordCommandHandler() commands.AddHistoryRecordCommandHandler {
	return commands.NewAddHistoryRecordCommandHandler(c.trackingUoWFactory(), c.geocoder)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateCreateOperatorCommandHandler() commands.CreateOperatorCommandHandler {
	return commands.NewCreateOperatorCommandHandler(c.operatorUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateOperatorCommandHandler() commands.UpdateOperatorCommandHandler {
	return commands.NewUpdateOperatorCommandHandler(c.operatorUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.operatorUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentDetailsQueryHandler() queries.GetShipmentDetailsQueryHandler {
	return queries.NewGetShipmentDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsByStatusQueryHandler() queries.GetShipmentsByStatusQueryHandler {
	return queries.NewGetShipmentsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHistoryQueryHandler() queries.GetHistoryQueryHandler {
	return queries.NewGetHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllHistoryQueryHandler() queries.GetAllHistoryQueryHandler {
	return queries.NewGetAllHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOperatorsQueryHandler() queries.GetAllOperatorsQueryHandler {
	return queries.NewGetAllOperatorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) trackingUoWFactory() commands.TrackingUoWFactory {
	return FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) operatorUoWFactory() commands.OperatorUoWFactory {
	return FuncOperatorUoWFactory(func() commands.OperatorUoW {
		return c.uowFactory.Create()
	})
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncOperatorUoWFactory func() commands.OperatorUoW

func (f FuncOperatorUoWFactory) Create() commands.OperatorUoW {
	return f()
}
