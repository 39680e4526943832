package queries

import (
	"context"
	"fmt"

	"tagmytrophy/internal/domain/qrcode"
	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/pkg/errs"
)

var ErrQRCodeNotFound = errs.New("qr code not found")

// ScanConflictError reports a tag that exists but cannot be sold in its
// current lifecycle state; the current status is echoed to the caller.
type ScanConflictError struct {
	Status string
}

func (e *ScanConflictError) Error() string {
	return fmt.Sprintf("qr code not scannable in status %q", e.Status)
}

type QRCodeQueries interface {
	Scan(ctx context.Context, code string) (*QRCodeView, error)
}

type QRCodeReadStore interface {
	FindByCode(ctx context.Context, code string) (*QRCodeView, error)
}

type qrCodeQueriesImpl struct {
	readStore QRCodeReadStore
}

func NewQRCodeQueries(readStore QRCodeReadStore) QRCodeQueries {
	return &qrCodeQueriesImpl{readStore: readStore}
}

// Scan looks up a tag for a point-of-sale checkout. Tags already assigned
// or claimed conflict with a new sale. A string that is not even a tag code
// is treated as not found without hitting the store.
func (q *qrCodeQueriesImpl) Scan(ctx context.Context, code string) (*QRCodeView, error) {
	if !qrcode.IsIdentifier(code) {
		return nil, ErrQRCodeNotFound
	}

	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQRCodeNotFound
		}
		return nil, err
	}

	if !qrcode.Status(view.Status).Scannable() {
		return nil, &ScanConflictError{Status: view.Status}
	}

	return view, nil
}
