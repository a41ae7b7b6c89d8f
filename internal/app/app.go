package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/niksmo/warehouse/config"
	"github.com/niksmo/warehouse/internal/adapter/httphandler"
	"github.com/niksmo/warehouse/internal/adapter/kafka"
	"github.com/niksmo/warehouse/internal/adapter/storage"
	"github.com/niksmo/warehouse/internal/adapter/token"
	"github.com/niksmo/warehouse/internal/core/service"
	"github.com/niksmo/warehouse/pkg/retry"
	"github.com/niksmo/warehouse/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

const dbConnectAttempts = 5

type App struct {
	ctx        context.Context
	cfg        config.Config
	sqldb      storage.SQLDB
	producer   kafka.OrderEventsProducer
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initReportsDB()
	app.initOrderEventsProducer()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initReportsDB() {
	const op = "App.initReportsDB"

	sqldb, err := retry.DoWithResult(
		app.ctx,
		retry.RetryConfig{
			MaxAttempts: dbConnectAttempts,
			Backoff:     retry.ExponentialBackoff(time.Second),
		},
		func() (storage.SQLDB, error) {
			return storage.NewSQLDB(app.ctx, app.cfg.ReportsDB)
		},
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb
}

func (app *App) initOrderEventsProducer() {
	const op = "App.initOrderEventsProducer"

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	topic := app.cfg.Broker.OrderEventsTopic
	serde, err := schema.NewSerdeOrderEventV1(
		app.ctx,
		schema.SubjectOpt(topic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewOrderEventsProducer(
		kafka.ProducerClientOpt(app.ctx, app.cfg.Broker.SeedBrokers, topic),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producer = producer
}

func (app *App) initHTTPServer() {
	const op = "App.initHTTPServer"

	issuer, err := token.NewJWT(
		app.cfg.Auth.JWTSecret, app.cfg.Auth.TokenTTL,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	authService := service.NewAuth(service.AuthCredentials{
		Username: app.cfg.Auth.Username,
		Password: app.cfg.Auth.Password,
	}, issuer)
	catalogService := service.NewCatalog(storage.NewProducts())
	ordersService := service.NewOrders(storage.NewOrders(), app.producer)
	imagesService := service.NewImages(storage.NewImages())
	reportsService := service.NewReports(
		storage.NewReportsRepository(app.sqldb),
	)

	mux := http.NewServeMux()
	httphandler.RegisterAuth(mux, authService)
	httphandler.RegisterProducts(mux, catalogService)
	httphandler.RegisterOrders(mux, ordersService)
	httphandler.RegisterImages(mux, imagesService)
	httphandler.RegisterReports(mux, reportsService)

	handler := httphandler.AllowOrigin(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.producer.Close()
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
