// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"net/http"
	"rolloff/internal/gateway/geocode"
	"rolloff/internal/gateway/invoicing"
	"rolloff/internal/gateway/ordernumber"
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
	"rolloff/internal/repository/assignment"
	"rolloff/internal/repository/dumpster"
	"rolloff/internal/repository/order"
	"rolloff/internal/repository/payment"
	"rolloff/internal/repository/quote"
	assignment2 "rolloff/internal/service/assignment"
	dumpster2 "rolloff/internal/service/dumpster"
	order2 "rolloff/internal/service/order"
	payment2 "rolloff/internal/service/payment"
	quote2 "rolloff/internal/service/quote"
	"rolloff/pkg/background"
	"rolloff/pkg/logger"
	"rolloff/pkg/querier"
	"rolloff/pkg/tx"
	"time"
)

// Injectors from wire.go:

func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideQuoteRepository(querier)
	orderRepository := provideOrderRepository(querier)
	client := provideHTTPClient()
	gateway := provideOrderNumberGateway(cfg, client)
	service := provideServiceQuote(repository, orderRepository, gateway, log)
	assignmentRepository := provideAssignmentRepository(querier)
	geocodeGateway := provideGeocodeGateway(cfg, client)
	manager := provideTxManager(pool)
	assignment := provideServiceAssignment(assignmentRepository, orderRepository, geocodeGateway, manager, log, cfg)
	orderService := provideServiceOrder(orderRepository, assignment, manager, cfg)
	dumpsterRepository := provideDumpsterRepository(querier)
	dumpsterService := provideServiceDumpster(dumpsterRepository)
	paymentRepository := providePaymentRepository(querier)
	invoicingGateway := provideInvoicingGateway(cfg, client)
	paymentService := provideServicePayment(paymentRepository, orderRepository, invoicingGateway)
	overdueInterval := provideOverdueInterval(cfg)
	paymentOverdue := providePaymentOverdueTask(log, paymentService, overdueInterval)
	v := provideTaskList(paymentOverdue)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceQuote:      service,
		ServiceOrder:      orderService,
		ServiceDumpster:   dumpsterService,
		ServiceAssignment: assignment,
		ServicePayment:    paymentService,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// wire.go:

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

func provideQuoteRepository(querier2 *querier.Querier) *quote.Repository {
	return quote.New(querier2)
}

func provideOrderRepository(querier2 *querier.Querier) *order.Repository {
	return order.New(querier2)
}

func provideDumpsterRepository(querier2 *querier.Querier) *dumpster.Repository {
	return dumpster.New(querier2)
}

func provideAssignmentRepository(querier2 *querier.Querier) *assignment.Repository {
	return assignment.New(querier2)
}

func providePaymentRepository(querier2 *querier.Querier) *payment.Repository {
	return payment.New(querier2)
}

func provideInvoicingGateway(cfg *config.Config, client *http.Client) *invoicing.InvoicingGateway {
	return invoicing.New(cfg.Invoicing.BaseURL, cfg.Invoicing.APIKey, client)
}

func provideOrderNumberGateway(cfg *config.Config, client *http.Client) *ordernumber.Gateway {
	return ordernumber.New(cfg.OrderNumber.BaseURL, client)
}

func provideGeocodeGateway(cfg *config.Config, client *http.Client) *geocode.Gateway {
	return geocode.New(cfg.Geocoder.BaseURL, client)
}

func provideServiceQuote(
	repository quote2.Repository,
	orders quote2.OrderCreator,
	orderNumber quote2.OrderNumberGateway,
	log logger.Logger,
) *quote2.Service {
	return quote2.New(repository, orders, orderNumber, log)
}

func provideServiceOrder(
	repository order2.Repository, assignment2 order2.AssignmentService,

	txManager order2.TxManager,
	cfg *config.Config,
) *order2.Service {
	return order2.New(
		repository, assignment2, txManager,
		cfg.Dispatch.DriverRoster,
		cfg.Dispatch.ReleaseOnCompletion,
	)
}

func provideServiceDumpster(repository dumpster2.Repository) *dumpster2.Service {
	return dumpster2.New(repository)
}

func provideServiceAssignment(
	repository assignment2.Repository,
	orders assignment2.OrderGetter,
	geocoder assignment2.Geocoder,
	txManager assignment2.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *assignment2.Assignment {
	return assignment2.New(
		repository,
		orders,
		geocoder,
		txManager,
		log,
		cfg.Dispatch.HomeYardName,
	)
}

func provideServicePayment(
	repository payment2.Repository,
	orders payment2.OrderGetter,
	provider payment2.InvoicingProvider,
) *payment2.Service {
	return payment2.New(repository, orders, provider)
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
