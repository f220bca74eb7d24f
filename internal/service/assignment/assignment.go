package assignment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rolloff/internal/entities"
	"rolloff/pkg/logger"
)

type Assignment struct {
	repository   Repository
	orders       OrderGetter
	geocoder     Geocoder
	txManager    TxManager
	log          logger.Logger
	homeYardName string
}

func New(
	repository Repository,
	orders OrderGetter,
	geocoder Geocoder,
	txManager TxManager,
	log logger.Logger,
	homeYardName string,
) *Assignment {
	return &Assignment{
		repository:   repository,
		orders:       orders,
		geocoder:     geocoder,
		txManager:    txManager,
		log:          log,
		homeYardName: homeYardName,
	}
}

// Assign couples a dumpster to an order. The dumpster side
// (dumpsters.current_order_id) is the single source of truth for the link.
// Geocoding of the drop address happens after commit and never fails the
// assignment.
func (a *Assignment) Assign(ctx context.Context, orderID, dumpsterID int64) (*entities.DumpsterAssignment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if dumpsterID <= 0 {
		return nil, ErrInvalidDumpsterID
	}

	dumpsterAssignment := entities.DumpsterAssignment{}

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := a.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for assignment: %w", err)
		}
		if order.Status.Terminal() {
			return ErrOrderClosed
		}

		address := deliveryAddress(order)
		assignedAt := time.Now().UTC()

		dumpster, err := a.repository.Acquire(ctx, dumpsterID, orderID, address, a.homeYardName, assignedAt)
		if err != nil {
			return fmt.Errorf("acquire dumpster: %w", err)
		}

		dumpsterAssignment = entities.DumpsterAssignment{
			DumpsterID:   dumpster.ID,
			DumpsterName: dumpster.Name,
			OrderID:      orderID,
			Address:      address,
			AssignedAt:   assignedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.enrichCoordinates(ctx, dumpsterAssignment.DumpsterID, dumpsterAssignment.Address)

	return &dumpsterAssignment, nil
}

// Unassign releases the dumpster currently pointing at this order and
// restores it to the available pool.
func (a *Assignment) Unassign(ctx context.Context, orderID int64) (*entities.DumpsterRelease, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	dumpster, err := a.repository.Release(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("release dumpster: %w", err)
	}

	return &entities.DumpsterRelease{
		DumpsterID:   dumpster.ID,
		DumpsterName: dumpster.Name,
		OrderID:      orderID,
		Status:       dumpster.Status.String(),
	}, nil
}

// GetAssigned returns the dumpster currently assigned to the order, or
// ErrAssignmentNotFound.
func (a *Assignment) GetAssigned(ctx context.Context, orderID int64) (*entities.Dumpster, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	dumpster, err := a.repository.GetByCurrentOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return dumpster, nil
}

func (a *Assignment) ListAssignable(ctx context.Context) ([]entities.Dumpster, error) {
	dumpsters, err := a.repository.GetAssignable(ctx, a.homeYardName)
	if err != nil {
		return nil, fmt.Errorf("list assignable dumpsters: %w", err)
	}

	return dumpsters, nil
}

// enrichCoordinates is best-effort: a geocoder outage leaves the dumpster
// without coordinates until the next assignment.
func (a *Assignment) enrichCoordinates(ctx context.Context, dumpsterID int64, address string) {
	coords, err := a.geocoder.Lookup(ctx, address)
	if err != nil {
		a.log.With(
			logger.NewField("dumpster_id", dumpsterID),
			logger.NewField("error", err),
		).Warn("geocode assignment address")
		return
	}

	if err := a.repository.SetCoordinates(ctx, dumpsterID, *coords); err != nil {
		a.log.With(
			logger.NewField("dumpster_id", dumpsterID),
			logger.NewField("error", err),
		).Warn("store dumpster coordinates")
	}
}

func deliveryAddress(order *entities.Order) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{order.Address, order.City, order.State} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, ", ")
}
