package commands

import (
	"context"

	"tagmytrophy/internal/domain/qrcode"
	reqdto "tagmytrophy/internal/handler/dto/request"
	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/pkg/clock"
	"tagmytrophy/internal/pkg/errs"
	"tagmytrophy/internal/usecase"
	"tagmytrophy/internal/usecase/queries"
)

var (
	ErrSlugNotFound   = errs.New("slug not found")
	ErrStoreNotFound  = errs.New("store not found")
	ErrCorruptMaxCode = errs.New("stored max qr code failed to parse")
)

type GenerateIDsResult struct {
	Codes []string
}

type AssignStoreResult struct {
	UpdatedCount int64
	QRCodes      []*queries.QRCodeView
}

type DeleteSlugResult struct {
	Slug       string
	WasClaimed bool
}

type RegenerateSlugResult struct {
	Slug         string
	ImageDataURL string
	OwnerID      *string
	IsClaimed    bool
}

type QRCodeCommands interface {
	GenerateIDs(ctx context.Context, quantity int) (*GenerateIDsResult, error)
	AssignStore(ctx context.Context, req reqdto.AssignStoreRequest, actorEmail string) (*AssignStoreResult, error)
	DeleteSlug(ctx context.Context, slug string) (*DeleteSlugResult, error)
	RegenerateSlug(ctx context.Context, slug string) (*RegenerateSlugResult, error)
}

type qrCodeCommandsImpl struct {
	qrRepo      QRCodeRepository
	qrReads     QRCodeReads
	storeReads  StoreReads
	authorizer  usecase.Authorizer
	encoder     ImageEncoder
	siteBaseURL string
	clock       clock.Clock
}

func NewQRCodeCommands(
	qrRepo QRCodeRepository,
	qrReads QRCodeReads,
	storeReads StoreReads,
	authorizer usecase.Authorizer,
	encoder ImageEncoder,
	siteBaseURL string,
	clk clock.Clock,
) QRCodeCommands {
	return &qrCodeCommandsImpl{
		qrRepo:      qrRepo,
		qrReads:     qrReads,
		storeReads:  storeReads,
		authorizer:  authorizer,
		encoder:     encoder,
		siteBaseURL: siteBaseURL,
		clock:       clk,
	}
}

// GenerateIDs extends the inventory with the next run of sequential codes.
// The first identifier continues from the highest code already stored.
func (c *qrCodeCommandsImpl) GenerateIDs(ctx context.Context, quantity int) (*GenerateIDsResult, error) {
	maxCode, err := c.qrReads.MaxCode(ctx)
	if err != nil {
		return nil, err
	}

	start := qrcode.FirstIdentifier()
	if maxCode != "" {
		last, err := qrcode.ParseIdentifier(maxCode)
		if err != nil {
			return nil, errs.Mark(err, ErrCorruptMaxCode)
		}
		start = last.Next()
	}

	codes, err := qrcode.Batch(start, quantity)
	if err != nil {
		return nil, err
	}

	if err := c.qrRepo.InsertBatch(ctx, codes, c.clock.Now()); err != nil {
		return nil, err
	}

	return &GenerateIDsResult{Codes: codes}, nil
}

// AssignStore stocks a batch of tags into a store, or with a null store
// reverts them to open inventory. Admin role is checked against the
// caller's profile, not just the session token.
func (c *qrCodeCommandsImpl) AssignStore(ctx context.Context, req reqdto.AssignStoreRequest, actorEmail string) (*AssignStoreResult, error) {
	if err := c.authorizer.RequireAdmin(ctx, actorEmail); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	var (
		updated int64
		err     error
	)

	if req.StoreID == nil {
		updated, err = c.qrRepo.UnassignStore(ctx, req.QRCodeIDs, now)
	} else {
		var store *queries.StoreView
		store, err = c.storeReads.FindByID(ctx, *req.StoreID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrStoreNotFound
			}
			return nil, err
		}
		updated, err = c.qrRepo.AssignStore(ctx, req.QRCodeIDs, store.ID, store.Name, now)
	}
	if err != nil {
		return nil, err
	}

	views, err := c.qrReads.FindByIDs(ctx, req.QRCodeIDs)
	if err != nil {
		return nil, err
	}

	return &AssignStoreResult{UpdatedCount: updated, QRCodes: views}, nil
}

func (c *qrCodeCommandsImpl) DeleteSlug(ctx context.Context, slug string) (*DeleteSlugResult, error) {
	deleted, err := c.qrRepo.DeleteBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlugNotFound
		}
		return nil, err
	}

	return &DeleteSlugResult{
		Slug:       slug,
		WasClaimed: deleted.Claimed,
	}, nil
}

// RegenerateSlug re-derives the tag's image from the canonical story URL.
// Ownership and claim state survive; only the image and update timestamp
// are overwritten.
func (c *qrCodeCommandsImpl) RegenerateSlug(ctx context.Context, slug string) (*RegenerateSlugResult, error) {
	view, err := c.qrReads.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlugNotFound
		}
		return nil, err
	}

	dataURL, err := c.encoder.EncodeDataURL(usecase.StoryURL(c.siteBaseURL, slug))
	if err != nil {
		return nil, err
	}

	if err := c.qrRepo.UpdateImage(ctx, slug, dataURL, c.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlugNotFound
		}
		return nil, err
	}

	result := &RegenerateSlugResult{
		Slug:         slug,
		ImageDataURL: dataURL,
		IsClaimed:    view.Claimed,
	}
	if view.OwnerID != nil {
		owner := view.OwnerID.String()
		result.OwnerID = &owner
	}
	return result, nil
}
