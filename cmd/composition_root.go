package cmd

import (
	"log/slog"
	"os"
	"time"

	"shipping/internal/adapters/out/kafka"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/redis/quotecache"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/keylock"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services, and use case handlers.
// The catalog, engine, lock set, cache, and notifier are shared singletons;
// every command gets its own unit of work through the factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	rateCatalog *services.RateCatalog
	quoteEngine *services.QuoteEngine
	orderLocks  *keylock.KeyLock
	quoteCache  ports.QuoteCache
	notifier    ports.OrderNotifier
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	quoteTTL, err := time.ParseDuration(configs.QuoteTTL)
	if err != nil {
		return CompositionRoot{}, err
	}
	vendorTimeout, err := time.ParseDuration(configs.QuoteVendorTimeout)
	if err != nil {
		return CompositionRoot{}, err
	}

	rateCatalog := services.NewRateCatalog()
	quoteEngine, err := services.NewQuoteEngine(rateCatalog, quoteTTL, vendorTimeout)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		rateCatalog: rateCatalog,
		quoteEngine: quoteEngine,
		orderLocks:  keylock.NewKeyLock(),
		quoteCache:  quotecache.NewRedisQuoteCache(configs.RedisAddr),
		notifier: kafka.NewOrderNotifier(
			configs.KafkaHost, configs.KafkaOrderChangedTopic, logger),
		logger: logger,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRequestQuotesCommandHandler() commands.RequestQuotesCommandHandler {
	var f commands.OrderQuoteUoWFactory = FuncOrderQuoteUoWFactory(func() commands.OrderQuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestQuotesCommandHandler(
		f, c.quoteEngine, c.rateCatalog, c.quoteCache, c.logger)
}

func (c *CompositionRoot) CreateBindQuoteCommandHandler() commands.BindQuoteCommandHandler {
	var f commands.OrderQuoteUoWFactory = FuncOrderQuoteUoWFactory(func() commands.OrderQuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBindQuoteCommandHandler(c.orderLocks, f, c.quoteCache, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(c.orderLocks, f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(c.orderLocks, f, c.notifier)
}

func (c *CompositionRoot) CreateRecordDeliveryEventCommandHandler() commands.RecordDeliveryEventCommandHandler {
	var f commands.HistoryUoWFactory = FuncHistoryUoWFactory(func() commands.HistoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDeliveryEventCommandHandler(c.orderLocks, f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateExpireQuotesCommandHandler() commands.ExpireQuotesCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireQuotesCommandHandler(f)
}

func (c *CompositionRoot) CreateReloadRateCatalogCommandHandler() commands.ReloadRateCatalogCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReloadRateCatalogCommandHandler(f, c.rateCatalog)
}

func (c *CompositionRoot) CreateGetOrderQuotesQueryHandler() queries.GetOrderQuotesQueryHandler {
	return queries.NewGetOrderQuotesQueryHandler(c.gormDB, c.quoteCache, c.logger)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderQuoteUoWFactory func() commands.OrderQuoteUoW

func (f FuncOrderQuoteUoWFactory) Create() commands.OrderQuoteUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncHistoryUoWFactory func() commands.HistoryUoW

func (f FuncHistoryUoWFactory) Create() commands.HistoryUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}
