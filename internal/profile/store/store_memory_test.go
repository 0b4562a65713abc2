package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"naturalize/internal/profile/models"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func (s *InMemoryStoreSuite) TestGetSetDelete() {
	ctx := context.Background()

	s.Run("missing key returns not ok without error", func() {
		v, ok, err := s.store.Get(ctx, "1", models.KeyUnlockDate)
		s.NoError(err)
		s.False(ok)
		s.Empty(v)
	})

	s.Run("set then get returns value", func() {
		s.Require().NoError(s.store.Set(ctx, "1", models.KeyANumber, "A012345678"))
		v, ok, err := s.store.Get(ctx, "1", models.KeyANumber)
		s.NoError(err)
		s.True(ok)
		s.Equal("A012345678", v)
	})

	s.Run("delete removes value", func() {
		s.Require().NoError(s.store.Delete(ctx, "1", models.KeyANumber))
		_, ok, err := s.store.Get(ctx, "1", models.KeyANumber)
		s.NoError(err)
		s.False(ok)
	})

	s.Run("empty value is present", func() {
		s.Require().NoError(s.store.Set(ctx, "2", models.KeyLockoutMessage, ""))
		_, ok, err := s.store.Get(ctx, "2", models.KeyLockoutMessage)
		s.NoError(err)
		s.True(ok)
	})
}

func (s *InMemoryStoreSuite) TestApply() {
	ctx := context.Background()

	s.Run("applies sets and deletes together", func() {
		s.Require().NoError(s.store.Apply(ctx, "7", []models.Mutation{
			models.SetOp(models.KeyUnlockDate, "2025-03-15"),
			models.SetOp(models.KeyLockoutMessage, "come back later"),
			models.SetOp(models.KeyControllingDescription, "LPRC - 1C"),
		}))
		s.Len(s.store.Snapshot("7"), 3)

		s.Require().NoError(s.store.Apply(ctx, "7", models.DeleteAll(models.LockoutKeys...)))
		s.Empty(s.store.Snapshot("7"))
	})

	s.Run("profiles are isolated per user", func() {
		s.Require().NoError(s.store.Set(ctx, "a", "k", "1"))
		_, ok, err := s.store.Get(ctx, "b", "k")
		s.NoError(err)
		s.False(ok)
	})
}
