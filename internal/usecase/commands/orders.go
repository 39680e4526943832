package commands

import (
	"context"

	"tagmytrophy/internal/domain/order"
	reqdto "tagmytrophy/internal/handler/dto/request"
	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/pkg/clock"
	"tagmytrophy/internal/pkg/errs"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrInvalidOrderState = errs.New("invalid order status")
)

type OrderCommands interface {
	Update(ctx context.Context, req reqdto.UpdateOrderRequest) error
}

type orderCommandsImpl struct {
	orderRepo OrderRepository
	clock     clock.Clock
}

func NewOrderCommands(orderRepo OrderRepository, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		orderRepo: orderRepo,
		clock:     clk,
	}
}

// Update applies an admin edit: the status always, shipment fields only
// when supplied. Monetary fields are not reachable from this path.
func (c *orderCommandsImpl) Update(ctx context.Context, req reqdto.UpdateOrderRequest) error {
	status, err := order.NewStatus(req.Status)
	if err != nil {
		return errs.Mark(err, ErrInvalidOrderState)
	}

	err = c.orderRepo.Update(ctx, req.OrderID, status.String(),
		req.TrackingNumber, req.Carrier, req.Notes, c.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}
