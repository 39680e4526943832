//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "tagmytrophy/internal/handler/dto/request"
	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/pkg/clock"
	"tagmytrophy/internal/usecase"
	"tagmytrophy/internal/usecase/commands"
	"tagmytrophy/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type qrRepoStub struct {
	inserted      []string
	assignedIDs   []uuid.UUID
	assignedStore uuid.UUID
	assignedName  string
	unassignedIDs []uuid.UUID
	deleted       *queries.QRCodeView
	deleteErr     error
	imageSlug     string
	imageDataURL  string
}

func (s *qrRepoStub) InsertBatch(_ context.Context, codes []string, _ time.Time) error {
	s.inserted = codes
	return nil
}

func (s *qrRepoStub) AssignStore(_ context.Context, ids []uuid.UUID, storeID uuid.UUID, storeName string, _ time.Time) (int64, error) {
	s.assignedIDs = ids
	s.assignedStore = storeID
	s.assignedName = storeName
	return int64(len(ids)), nil
}

func (s *qrRepoStub) UnassignStore(_ context.Context, ids []uuid.UUID, _ time.Time) (int64, error) {
	s.unassignedIDs = ids
	return int64(len(ids)), nil
}

func (s *qrRepoStub) DeleteBySlug(_ context.Context, _ string) (*queries.QRCodeView, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return s.deleted, nil
}

func (s *qrRepoStub) UpdateImage(_ context.Context, slug string, imageDataURL string, _ time.Time) error {
	s.imageSlug = slug
	s.imageDataURL = imageDataURL
	return nil
}

type qrReadsStub struct {
	maxCode    string
	maxCodeErr error
	bySlug     *queries.QRCodeView
	bySlugErr  error
	byIDs      []*queries.QRCodeView
}

func (s *qrReadsStub) MaxCode(_ context.Context) (string, error) {
	return s.maxCode, s.maxCodeErr
}

func (s *qrReadsStub) FindByIDs(_ context.Context, _ []uuid.UUID) ([]*queries.QRCodeView, error) {
	return s.byIDs, nil
}

func (s *qrReadsStub) FindBySlug(_ context.Context, _ string) (*queries.QRCodeView, error) {
	if s.bySlugErr != nil {
		return nil, s.bySlugErr
	}
	return s.bySlug, nil
}

type storeReadsStub struct {
	store *queries.StoreView
	err   error
}

func (s *storeReadsStub) FindByID(_ context.Context, _ uuid.UUID) (*queries.StoreView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.store, nil
}

type authorizerStub struct {
	err error
}

func (a *authorizerStub) RequireAdmin(_ context.Context, _ string) error {
	return a.err
}

type encoderStub struct {
	encoded string
}

func (e *encoderStub) EncodeDataURL(url string) (string, error) {
	e.encoded = url
	return "data:image/png;base64,stub", nil
}

func newQRCommands(repo *qrRepoStub, reads *qrReadsStub, stores *storeReadsStub, authz usecase.Authorizer) commands.QRCodeCommands {
	return commands.NewQRCodeCommands(
		repo, reads, stores, authz, &encoderStub{},
		"https://tagmytrophy.test",
		clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	)
}

func TestGenerateIDs(t *testing.T) {
	t.Run("fresh inventory starts at qr00001", func(t *testing.T) {
		repo := &qrRepoStub{}
		cmds := newQRCommands(repo, &qrReadsStub{maxCode: ""}, &storeReadsStub{}, &authorizerStub{})

		result, err := cmds.GenerateIDs(context.Background(), 3)
		require.NoError(t, err)

		want := []string{"qr00001", "qr00002", "qr00003"}
		if diff := cmp.Diff(want, result.Codes); diff != "" {
			t.Errorf("codes mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, want, repo.inserted)
	})

	t.Run("continues from the highest stored code", func(t *testing.T) {
		repo := &qrRepoStub{}
		cmds := newQRCommands(repo, &qrReadsStub{maxCode: "qr99998"}, &storeReadsStub{}, &authorizerStub{})

		result, err := cmds.GenerateIDs(context.Background(), 3)
		require.NoError(t, err)

		want := []string{"qr99999", "qrA00001", "qrA00002"}
		if diff := cmp.Diff(want, result.Codes); diff != "" {
			t.Errorf("codes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("corrupt stored code surfaces as an error", func(t *testing.T) {
		cmds := newQRCommands(&qrRepoStub{}, &qrReadsStub{maxCode: "not-a-code"}, &storeReadsStub{}, &authorizerStub{})

		_, err := cmds.GenerateIDs(context.Background(), 3)
		assert.ErrorIs(t, err, commands.ErrCorruptMaxCode)
	})
}

func TestAssignStore(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("assigns the batch to the store", func(t *testing.T) {
		storeID := uuid.New()
		repo := &qrRepoStub{}
		reads := &qrReadsStub{byIDs: []*queries.QRCodeView{{ID: ids[0]}, {ID: ids[1]}}}
		stores := &storeReadsStub{store: &queries.StoreView{ID: storeID, Name: "Trophy World"}}
		cmds := newQRCommands(repo, reads, stores, &authorizerStub{})

		result, err := cmds.AssignStore(context.Background(),
			reqdto.AssignStoreRequest{QRCodeIDs: ids, StoreID: &storeID}, "admin@tagmytrophy.test")
		require.NoError(t, err)

		assert.Equal(t, int64(2), result.UpdatedCount)
		assert.Len(t, result.QRCodes, 2)
		assert.Equal(t, ids, repo.assignedIDs)
		assert.Equal(t, "Trophy World", repo.assignedName)
	})

	t.Run("null store reverts the batch to open inventory", func(t *testing.T) {
		repo := &qrRepoStub{}
		reads := &qrReadsStub{byIDs: []*queries.QRCodeView{{ID: ids[0]}, {ID: ids[1]}}}
		cmds := newQRCommands(repo, reads, &storeReadsStub{}, &authorizerStub{})

		result, err := cmds.AssignStore(context.Background(),
			reqdto.AssignStoreRequest{QRCodeIDs: ids, StoreID: nil}, "admin@tagmytrophy.test")
		require.NoError(t, err)

		assert.Equal(t, int64(2), result.UpdatedCount)
		assert.Equal(t, ids, repo.unassignedIDs)
		assert.Empty(t, repo.assignedIDs)
	})

	t.Run("non-admin caller is refused before any write", func(t *testing.T) {
		repo := &qrRepoStub{}
		cmds := newQRCommands(repo, &qrReadsStub{}, &storeReadsStub{}, &authorizerStub{err: usecase.ErrForbidden})

		_, err := cmds.AssignStore(context.Background(),
			reqdto.AssignStoreRequest{QRCodeIDs: ids}, "viewer@tagmytrophy.test")
		assert.ErrorIs(t, err, usecase.ErrForbidden)
		assert.Empty(t, repo.assignedIDs)
		assert.Empty(t, repo.unassignedIDs)
	})

	t.Run("unknown store is reported", func(t *testing.T) {
		storeID := uuid.New()
		stores := &storeReadsStub{err: infra.WrapRepoErr("store not found", nil, infra.KindNotFound)}
		cmds := newQRCommands(&qrRepoStub{}, &qrReadsStub{}, stores, &authorizerStub{})

		_, err := cmds.AssignStore(context.Background(),
			reqdto.AssignStoreRequest{QRCodeIDs: ids, StoreID: &storeID}, "admin@tagmytrophy.test")
		assert.ErrorIs(t, err, commands.ErrStoreNotFound)
	})
}

func TestDeleteSlug(t *testing.T) {
	t.Run("reports the claim state of the deleted tag", func(t *testing.T) {
		repo := &qrRepoStub{deleted: &queries.QRCodeView{Claimed: true}}
		cmds := newQRCommands(repo, &qrReadsStub{}, &storeReadsStub{}, &authorizerStub{})

		result, err := cmds.DeleteSlug(context.Background(), "elk-2025")
		require.NoError(t, err)
		assert.Equal(t, "elk-2025", result.Slug)
		assert.True(t, result.WasClaimed)
	})

	t.Run("missing slug is reported", func(t *testing.T) {
		repo := &qrRepoStub{deleteErr: infra.WrapRepoErr("no such slug", nil, infra.KindNotFound)}
		cmds := newQRCommands(repo, &qrReadsStub{}, &storeReadsStub{}, &authorizerStub{})

		_, err := cmds.DeleteSlug(context.Background(), "missing")
		assert.ErrorIs(t, err, commands.ErrSlugNotFound)
	})
}

func TestRegenerateSlug(t *testing.T) {
	t.Run("encodes the canonical story URL", func(t *testing.T) {
		owner := uuid.New()
		repo := &qrRepoStub{}
		reads := &qrReadsStub{bySlug: &queries.QRCodeView{OwnerID: &owner, Claimed: true}}
		encoder := &encoderStub{}
		cmds := commands.NewQRCodeCommands(
			repo, reads, &storeReadsStub{}, &authorizerStub{}, encoder,
			"https://tagmytrophy.test/",
			clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		)

		result, err := cmds.RegenerateSlug(context.Background(), "elk-2025")
		require.NoError(t, err)

		assert.Equal(t, "https://tagmytrophy.test/story/elk-2025", encoder.encoded)
		assert.Equal(t, "data:image/png;base64,stub", result.ImageDataURL)
		assert.Equal(t, result.ImageDataURL, repo.imageDataURL)
		assert.True(t, result.IsClaimed)
		require.NotNil(t, result.OwnerID)
		assert.Equal(t, owner.String(), *result.OwnerID)
	})

	t.Run("missing slug is reported", func(t *testing.T) {
		reads := &qrReadsStub{bySlugErr: infra.WrapRepoErr("no such slug", nil, infra.KindNotFound)}
		cmds := newQRCommands(&qrRepoStub{}, reads, &storeReadsStub{}, &authorizerStub{})

		_, err := cmds.RegenerateSlug(context.Background(), "missing")
		assert.ErrorIs(t, err, commands.ErrSlugNotFound)
	})
}
