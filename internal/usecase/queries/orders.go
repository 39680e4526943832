package queries

import (
	"context"
	"fmt"

	"tagmytrophy/internal/domain/order"
	"tagmytrophy/internal/pkg/errs"
)

type OrderQueries interface {
	List(ctx context.Context) ([]*OrderView, error)
}

type OrderReadStore interface {
	ListAll(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

// List returns every order, newest first. Monetary columns are checked
// against the totals invariant on the way out; a drifted row fails the
// whole read rather than being served silently.
func (q *orderQueriesImpl) List(ctx context.Context) ([]*OrderView, error) {
	orders, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		totals := order.Totals{
			Subtotal: o.Subtotal,
			Tax:      o.Tax,
			Shipping: o.Shipping,
			Total:    o.Total,
		}
		if err := totals.Validate(); err != nil {
			return nil, errs.Wrap(err, fmt.Sprintf("order %s", o.ID))
		}
	}

	if orders == nil {
		orders = []*OrderView{}
	}
	return orders, nil
}
