//go:build integration

package store_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"naturalize/internal/profile/models"
	"naturalize/internal/profile/store"
)

// contractSuite holds the behaviors every backend must share.
type contractSuite struct {
	suite.Suite
	store store.Store
}

func (s *contractSuite) TestMissingKey() {
	_, ok, err := s.store.Get(context.Background(), "nobody", models.KeyUnlockDate)
	s.NoError(err)
	s.False(ok)
}

func (s *contractSuite) TestSetOverwrites() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "1", models.KeyMasterRecordID, "first"))
	s.Require().NoError(s.store.Set(ctx, "1", models.KeyMasterRecordID, "second"))

	v, ok, err := s.store.Get(ctx, "1", models.KeyMasterRecordID)
	s.NoError(err)
	s.True(ok)
	s.Equal("second", v)
}

func (s *contractSuite) TestApplyLockoutTriple() {
	ctx := context.Background()
	s.Require().NoError(s.store.Apply(ctx, "9", []models.Mutation{
		models.SetOp(models.KeyUnlockDate, "2025-03-15"),
		models.SetOp(models.KeyLockoutMessage, "<p>Please come back on March 15.</p>"),
		models.SetOp(models.KeyControllingDescription, "LPR3 - 2G"),
	}))

	for _, key := range models.LockoutKeys {
		_, ok, err := s.store.Get(ctx, "9", key)
		s.NoError(err)
		s.True(ok, key)
	}

	s.Require().NoError(s.store.Apply(ctx, "9", models.DeleteAll(models.LockoutKeys...)))
	for _, key := range models.LockoutKeys {
		_, ok, err := s.store.Get(ctx, "9", key)
		s.NoError(err)
		s.False(ok, key)
	}
}

func (s *contractSuite) TestDeleteMissingKeyIsNoop() {
	s.NoError(s.store.Delete(context.Background(), "1", "never-set"))
}
