package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rolloff/internal/entities"
	"rolloff/internal/service/assignment"
)

// transitions is the closed transition table: the forward chain of the rental
// workflow plus a backward move to the immediately preceding stage for admin
// corrections. cancelled is reachable only before the truck rolls.
var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:     {entities.OrderScheduled, entities.OrderCancelled},
	entities.OrderScheduled:   {entities.OrderOnWay, entities.OrderPending, entities.OrderCancelled},
	entities.OrderOnWay:       {entities.OrderDelivered, entities.OrderScheduled},
	entities.OrderDelivered:   {entities.OrderOnWayPickup, entities.OrderOnWay},
	entities.OrderOnWayPickup: {entities.OrderPickedUp, entities.OrderCompleted, entities.OrderDelivered},
	entities.OrderPickedUp:    {entities.OrderCompleted, entities.OrderOnWayPickup},
	entities.OrderCompleted:   {},
	entities.OrderCancelled:   {},
}

type Service struct {
	repository        Repository
	assignmentService AssignmentService
	txManager         TxManager
	driverRoster      []string

	// releaseOnCompletion controls whether moving an order to completed frees
	// its dumpster in the same transaction. Defaults to on via config.
	releaseOnCompletion bool
}

func New(
	repository Repository,
	assignmentService AssignmentService,
	txManager TxManager,
	driverRoster []string,
	releaseOnCompletion bool,
) *Service {
	return &Service{
		repository:          repository,
		assignmentService:   assignmentService,
		txManager:           txManager,
		driverRoster:        driverRoster,
		releaseOnCompletion: releaseOnCompletion,
	}
}

// ChangeStatus validates and applies a status transition. The order update
// and any dumpster release commit atomically or not at all.
func (s *Service) ChangeStatus(ctx context.Context, orderID int64, newStatus entities.OrderStatusType) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !isValidOrderStatus(newStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	var updated *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !transitionAllowed(order.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
		}

		if newStatus == entities.OrderOnWay {
			if err := s.requireAssignedDumpster(ctx, orderID); err != nil {
				return err
			}
		}

		update := buildStatusUpdate(order.Status, newStatus, time.Now().UTC())

		updated, err = s.repository.UpdateStatus(ctx, orderID, update)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if s.shouldReleaseDumpster(newStatus) {
			if err := s.releaseDumpster(ctx, orderID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, status *entities.OrderStatusType) ([]entities.Order, error) {
	if status != nil && !isValidOrderStatus(*status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
	}

	orders, err := s.repository.GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return orders, nil
}

// UpdateOrder edits order fields. Status is not editable here, only through
// ChangeStatus.
func (s *Service) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || *orderModify.ID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if orderModify.Status != nil {
		return nil, fmt.Errorf("status is not editable: %w", ErrInvalidTransition)
	}
	if orderModify.AssignedTo != nil && !s.isOnRoster(*orderModify.AssignedTo) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, *orderModify.AssignedTo)
	}

	order, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	return order, nil
}

// DeleteOrder removes an order and releases its dumpster in the same
// transaction, so a delete can never strand an in_use asset.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.releaseDumpster(ctx, id); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

func (s *Service) requireAssignedDumpster(ctx context.Context, orderID int64) error {
	_, err := s.assignmentService.GetAssigned(ctx, orderID)
	if err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return ErrDumpsterNotAssigned
		}
		return fmt.Errorf("check dumpster assignment: %w", err)
	}
	return nil
}

func (s *Service) shouldReleaseDumpster(newStatus entities.OrderStatusType) bool {
	if newStatus == entities.OrderCancelled {
		return true
	}
	return newStatus == entities.OrderCompleted && s.releaseOnCompletion
}

func (s *Service) releaseDumpster(ctx context.Context, orderID int64) error {
	_, err := s.assignmentService.Unassign(ctx, orderID)
	if err != nil && !errors.Is(err, assignment.ErrAssignmentNotFound) {
		return fmt.Errorf("release dumpster: %w", err)
	}
	return nil
}

func (s *Service) isOnRoster(driver string) bool {
	for _, name := range s.driverRoster {
		if name == driver {
			return true
		}
	}
	return false
}

func transitionAllowed(from, to entities.OrderStatusType) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// buildStatusUpdate stamps the timestamp owned by the stage being entered and
// clears the one owned by a stage being backed out of.
func buildStatusUpdate(from, to entities.OrderStatusType, now time.Time) entities.OrderStatusUpdate {
	update := entities.OrderStatusUpdate{Status: to}

	switch to {
	case entities.OrderDelivered:
		update.ActualDeliveryDate = entities.WriteTime(now)
	case entities.OrderPickedUp:
		update.ActualPickupDate = entities.WriteTime(now)
	case entities.OrderCompleted:
		update.CompletedAt = entities.WriteTime(now)
	}

	// backward corrections
	if from == entities.OrderDelivered && to == entities.OrderOnWay {
		update.ActualDeliveryDate = entities.ClearTime()
	}
	if from == entities.OrderPickedUp && to == entities.OrderOnWayPickup {
		update.ActualPickupDate = entities.ClearTime()
	}

	return update
}
