package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/twmb/franz-go/pkg/sr"

	"github.com/crushcollection/storefront/config"
	"github.com/crushcollection/storefront/internal/adapter/catalog"
	"github.com/crushcollection/storefront/internal/adapter/httphandler"
	"github.com/crushcollection/storefront/internal/adapter/kafka"
	"github.com/crushcollection/storefront/internal/adapter/memstore"
	"github.com/crushcollection/storefront/internal/core/port"
	"github.com/crushcollection/storefront/internal/core/service"
	"github.com/crushcollection/storefront/pkg/schema"
)

type closer interface {
	Close()
}

type App struct {
	ctx context.Context
	cfg config.Config

	catalog  port.CatalogProvider
	sessions port.SessionProvider

	orderProducer port.OrderEventsProducer
	producerClose closer
	salesProc     kafka.SalesProcessor
	salesView     kafka.SalesView
	salesReader   port.SalesReader

	storefront service.Storefront
	checkout   *service.Checkout

	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initSessions()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	c, err := catalog.NewFileCatalog(app.cfg.CatalogFile)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = c
}

func (app *App) initSessions() {
	app.sessions = memstore.NewSessionRegistry()
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	if !app.cfg.BrokerEnabled() {
		slog.Info("broker disabled, order events are discarded", "op", op)
		app.orderProducer = kafka.NopOrderEventsProducer{}
		app.producerClose = kafka.NopOrderEventsProducer{}
		app.salesReader = kafka.NopSalesReader{}
		return
	}

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	stream := app.cfg.Broker.Topics.OrderPlacedStream
	group := app.cfg.Broker.Consumers.SalesGroup

	orderSerde := app.makeOrderSerde()

	producer, err := kafka.NewOrderPlacedProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, stream),
		kafka.ProducerEncoderOpt(orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.orderProducer = producer
	app.producerClose = producer

	salesProc, err := kafka.NewSalesProcessor(seedBrokers, stream, group, orderSerde)
	if err != nil {
		app.fallDown(op, err)
	}
	app.salesProc = salesProc

	salesView, err := kafka.NewSalesView(seedBrokers, group)
	if err != nil {
		app.fallDown(op, err)
	}
	app.salesView = salesView
	app.salesReader = salesView
}

func (app *App) makeOrderSerde() kafka.Serde {
	const op = "App.makeOrderSerde"

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := app.cfg.Broker.Topics.OrderPlacedStream + "-value"
	serde, err := schema.NewSerdeOrderPlacedV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	return serde
}

func (app *App) initCoreServices() {
	app.storefront = service.NewStorefront(app.catalog, app.sessions)
	app.checkout = service.NewCheckout(
		app.sessions, app.orderProducer, app.cfg.Checkout.PlacementDelay,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.storefront, app.salesReader)
	httphandler.RegisterFilters(mux, app.storefront)
	httphandler.RegisterCart(mux, app.storefront)
	httphandler.RegisterWishlist(mux, app.storefront)
	httphandler.RegisterSummary(mux, app.storefront)
	httphandler.RegisterCheckout(mux, app.checkout)

	handler := httphandler.WithSession(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	if app.cfg.BrokerEnabled() {
		go app.salesProc.Run(app.ctx)
		go app.salesView.Run(app.ctx)
	}

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.producerClose.Close()
	if app.cfg.BrokerEnabled() {
		app.salesProc.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
