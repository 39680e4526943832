//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/infra/readstore"
	"tagmytrophy/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type QRCodeRepositoryTestSuite struct {
	suite.Suite
	pool      *pgxpool.Pool
	repo      *repository.QRCodeRepository
	readStore *readstore.QRCodeReadStore
	now       time.Time
}

func (s *QRCodeRepositoryTestSuite) SetupSuite() {
	s.pool = setupTestDatabase(s.T())
	s.repo = repository.NewQRCodeRepository(s.pool)
	s.readStore = readstore.NewQRCodeReadStore(s.pool)
	s.now = time.Now().UTC().Truncate(time.Second)
}

func (s *QRCodeRepositoryTestSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE qr_codes, stores CASCADE")
	s.Require().NoError(err)
}

func TestQRCodeRepositorySuite(t *testing.T) {
	suite.Run(t, new(QRCodeRepositoryTestSuite))
}

func (s *QRCodeRepositoryTestSuite) insertStore(name string) uuid.UUID {
	var id uuid.UUID
	err := s.pool.QueryRow(context.Background(),
		"INSERT INTO stores (name) VALUES ($1) RETURNING id", name).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *QRCodeRepositoryTestSuite) insertBatch(codes ...string) []uuid.UUID {
	ctx := context.Background()
	s.Require().NoError(s.repo.InsertBatch(ctx, codes, s.now))

	ids := make([]uuid.UUID, 0, len(codes))
	for _, code := range codes {
		view, err := s.readStore.FindByCode(ctx, code)
		s.Require().NoError(err)
		ids = append(ids, view.ID)
	}
	return ids
}

func (s *QRCodeRepositoryTestSuite) TestInsertBatch() {
	ctx := context.Background()

	s.Run("inserted rows start as available inventory", func() {
		s.insertBatch("qr00001", "qr00002")

		view, err := s.readStore.FindByCode(ctx, "qr00001")
		s.Require().NoError(err)
		s.Equal("available", view.Status)
		s.Nil(view.StoreID)
		s.False(view.Claimed)
	})

	s.Run("duplicate code rolls the whole batch back", func() {
		err := s.repo.InsertBatch(ctx, []string{"qr00003", "qr00001"}, s.now)
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindDuplicateKey))

		_, err = s.readStore.FindByCode(ctx, "qr00003")
		s.True(infra.IsKind(err, infra.KindNotFound), "qr00003 must not survive the failed batch")
	})
}

func (s *QRCodeRepositoryTestSuite) TestMaxCode() {
	ctx := context.Background()

	s.Run("empty inventory reports no max", func() {
		maxCode, err := s.readStore.MaxCode(ctx)
		s.Require().NoError(err)
		s.Empty(maxCode)
	})

	s.Run("prefixed codes order after plain ones", func() {
		s.insertBatch("qr00001", "qr99999", "qrA00001", "qrA00002")

		maxCode, err := s.readStore.MaxCode(ctx)
		s.Require().NoError(err)
		s.Equal("qrA00002", maxCode)
	})
}

func (s *QRCodeRepositoryTestSuite) TestAssignAndUnassignStore() {
	ctx := context.Background()
	ids := s.insertBatch("qr00010", "qr00011", "qr00012")
	storeID := s.insertStore("Trophy World")

	updated, err := s.repo.AssignStore(ctx, ids[:2], storeID, "Trophy World", s.now)
	s.Require().NoError(err)
	s.Equal(int64(2), updated)

	assigned, err := s.readStore.FindByIDs(ctx, ids[:2])
	s.Require().NoError(err)
	for _, view := range assigned {
		s.Equal("in_store", view.Status)
		s.Require().NotNil(view.StoreID)
		s.Equal(storeID, *view.StoreID)
		s.Require().NotNil(view.StoreName)
		s.Equal("Trophy World", *view.StoreName)
	}

	// The third tag was not in the batch and stays untouched.
	untouched, err := s.readStore.FindByCode(ctx, "qr00012")
	s.Require().NoError(err)
	s.Equal("available", untouched.Status)

	updated, err = s.repo.UnassignStore(ctx, ids[:2], s.now)
	s.Require().NoError(err)
	s.Equal(int64(2), updated)

	reverted, err := s.readStore.FindByIDs(ctx, ids[:2])
	s.Require().NoError(err)
	for _, view := range reverted {
		s.Equal("available", view.Status)
		s.Nil(view.StoreID)
		s.Nil(view.StoreName)
	}
}

func (s *QRCodeRepositoryTestSuite) TestDeleteBySlug() {
	ctx := context.Background()
	s.insertBatch("qr00020")

	_, err := s.pool.Exec(ctx,
		"UPDATE qr_codes SET slug = 'elk-2025', claimed = TRUE WHERE code = 'qr00020'")
	s.Require().NoError(err)

	s.Run("returns the deleted row's claim state", func() {
		view, err := s.repo.DeleteBySlug(ctx, "elk-2025")
		s.Require().NoError(err)
		s.Equal("qr00020", view.Code)
		s.True(view.Claimed)

		_, err = s.readStore.FindByCode(ctx, "qr00020")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("missing slug reports not found", func() {
		_, err := s.repo.DeleteBySlug(ctx, "never-existed")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *QRCodeRepositoryTestSuite) TestUpdateImage() {
	ctx := context.Background()
	s.insertBatch("qr00030")

	_, err := s.pool.Exec(ctx,
		"UPDATE qr_codes SET slug = 'deer-2025' WHERE code = 'qr00030'")
	s.Require().NoError(err)

	s.Run("overwrites only the image", func() {
		err := s.repo.UpdateImage(ctx, "deer-2025", "data:image/png;base64,fresh", s.now)
		s.Require().NoError(err)

		view, err := s.readStore.FindBySlug(ctx, "deer-2025")
		s.Require().NoError(err)
		s.Require().NotNil(view.ImageDataURL)
		s.Equal("data:image/png;base64,fresh", *view.ImageDataURL)
		s.False(view.Claimed)
	})

	s.Run("missing slug reports not found", func() {
		err := s.repo.UpdateImage(ctx, "never-existed", "data:image/png;base64,x", s.now)
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}
