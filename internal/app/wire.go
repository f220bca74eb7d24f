//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	geocodeGateway "rolloff/internal/gateway/geocode"
	invoicingGateway "rolloff/internal/gateway/invoicing"
	ordernumberGateway "rolloff/internal/gateway/ordernumber"
	"rolloff/internal/handlers/rest/dumpster_assign_post"
	"rolloff/internal/handlers/rest/dumpster_post"
	"rolloff/internal/handlers/rest/dumpster_put"
	"rolloff/internal/handlers/rest/dumpster_unassign_post"
	"rolloff/internal/handlers/rest/dumpsters_get"
	"rolloff/internal/handlers/rest/order_delete"
	"rolloff/internal/handlers/rest/order_get"
	"rolloff/internal/handlers/rest/order_payment_get"
	"rolloff/internal/handlers/rest/order_put"
	"rolloff/internal/handlers/rest/order_status_post"
	"rolloff/internal/handlers/rest/orders_get"
	"rolloff/internal/handlers/rest/payment_cancel_post"
	"rolloff/internal/handlers/rest/payment_delete"
	"rolloff/internal/handlers/rest/payment_post"
	"rolloff/internal/handlers/rest/payment_refresh_post"
	"rolloff/internal/handlers/rest/payment_send_post"
	"rolloff/internal/handlers/rest/quote_post"
	"rolloff/internal/handlers/rest/quote_promote_post"
	"rolloff/internal/handlers/rest/quote_put"
	"rolloff/internal/handlers/rest/quotes_get"
	"rolloff/internal/handlers/tasks/payment_overdue"
	"rolloff/internal/pkg/config"

	assignmentRepo "rolloff/internal/repository/assignment"
	dumpsterRepo "rolloff/internal/repository/dumpster"
	orderRepo "rolloff/internal/repository/order"
	paymentRepo "rolloff/internal/repository/payment"
	quoteRepo "rolloff/internal/repository/quote"
	assignmentService "rolloff/internal/service/assignment"
	dumpsterService "rolloff/internal/service/dumpster"
	orderService "rolloff/internal/service/order"
	paymentService "rolloff/internal/service/payment"
	quoteService "rolloff/internal/service/quote"

	"rolloff/pkg/background"
	"rolloff/pkg/logger"
	"rolloff/pkg/querier"
	"rolloff/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueInterval time.Duration
)

const outboundRequestTimeout = 10 * time.Second

type Application struct {
	ServiceQuote      ServiceQuote
	ServiceOrder      ServiceOrder
	ServiceDumpster   ServiceDumpster
	ServiceAssignment ServiceAssignment
	ServicePayment    ServicePayment
	BackgroundWorkers *background.Worker
}

type ServiceQuote interface {
	quote_post.Service
	quote_put.Service
	quotes_get.Service
	quote_promote_post.Service
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_put.Service
	order_delete.Service
	order_status_post.Service
}

type ServiceDumpster interface {
	dumpster_post.Service
	dumpster_put.Service
	dumpsters_get.Service
}

type ServiceAssignment interface {
	dumpster_assign_post.Service
	dumpster_unassign_post.Service
	dumpsters_get.AssignmentService
}

type ServicePayment interface {
	payment_post.Service
	payment_send_post.Service
	payment_refresh_post.Service
	payment_cancel_post.Service
	payment_delete.Service
	order_payment_get.Service
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOverdueInterval,
		provideHTTPClient,

		provideQuoteRepository,
		provideOrderRepository,
		provideDumpsterRepository,
		provideAssignmentRepository,
		providePaymentRepository,

		provideInvoicingGateway,
		provideOrderNumberGateway,
		provideGeocodeGateway,

		provideServiceQuote,
		provideServiceOrder,
		provideServiceDumpster,
		provideServiceAssignment,
		provideServicePayment,

		providePaymentOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceQuote), new(*quoteService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDumpster), new(*dumpsterService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServicePayment), new(*paymentService.Service)),

		wire.Bind(new(quoteService.Repository), new(*quoteRepo.Repository)),
		wire.Bind(new(quoteService.OrderCreator), new(*orderRepo.Repository)),
		wire.Bind(new(quoteService.OrderNumberGateway), new(*ordernumberGateway.Gateway)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AssignmentService), new(*assignmentService.Assignment)),

		wire.Bind(new(dumpsterService.Repository), new(*dumpsterRepo.Repository)),

		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(assignmentService.OrderGetter), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.Geocoder), new(*geocodeGateway.Gateway)),

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.OrderGetter), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.InvoicingProvider), new(*invoicingGateway.InvoicingGateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(payment_overdue.Service), new(*paymentService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideHTTPClient() *http.Client {
	return &http.Client{
		Timeout: outboundRequestTimeout,
	}
}

func provideQuoteRepository(querier *querier.Querier) *quoteRepo.Repository {
	return quoteRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDumpsterRepository(querier *querier.Querier) *dumpsterRepo.Repository {
	return dumpsterRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideInvoicingGateway(cfg *config.Config, client *http.Client) *invoicingGateway.InvoicingGateway {
	return invoicingGateway.New(cfg.Invoicing.BaseURL, cfg.Invoicing.APIKey, client)
}

func provideOrderNumberGateway(cfg *config.Config, client *http.Client) *ordernumberGateway.Gateway {
	return ordernumberGateway.New(cfg.OrderNumber.BaseURL, client)
}

func provideGeocodeGateway(cfg *config.Config, client *http.Client) *geocodeGateway.Gateway {
	return geocodeGateway.New(cfg.Geocoder.BaseURL, client)
}

func provideServiceQuote(
	repository quoteService.Repository,
	orders quoteService.OrderCreator,
	orderNumber quoteService.OrderNumberGateway,
	log logger.Logger,
) *quoteService.Service {
	return quoteService.New(repository, orders, orderNumber, log)
}

func provideServiceOrder(
	repository orderService.Repository,
	assignment orderService.AssignmentService,
	txManager orderService.TxManager,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(
		repository,
		assignment,
		txManager,
		cfg.Dispatch.DriverRoster,
		cfg.Dispatch.ReleaseOnCompletion,
	)
}

func provideServiceDumpster(repository dumpsterService.Repository) *dumpsterService.Service {
	return dumpsterService.New(repository)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	orders assignmentService.OrderGetter,
	geocoder assignmentService.Geocoder,
	txManager assignmentService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *assignmentService.Assignment {
	return assignmentService.New(
		repository,
		orders,
		geocoder,
		txManager,
		log,
		cfg.Dispatch.HomeYardName,
	)
}

func provideServicePayment(
	repository paymentService.Repository,
	orders paymentService.OrderGetter,
	provider paymentService.InvoicingProvider,
) *paymentService.Service {
	return paymentService.New(repository, orders, provider)
}

func provideOverdueInterval(cfg *config.Config) OverdueInterval {
	return OverdueInterval(cfg.Tasks.PaymentOverdueInterval)
}

func providePaymentOverdueTask(
	log logger.Logger,
	paymentSvc payment_overdue.Service,
	interval OverdueInterval,
) *payment_overdue.PaymentOverdue {
	return payment_overdue.NewPaymentOverdue(log, paymentSvc, time.Duration(interval))
}

func provideTaskList(
	paymentOverdueTask *payment_overdue.PaymentOverdue,
) []background.Task {
	return []background.Task{
		paymentOverdueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
