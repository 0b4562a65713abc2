package store

import (
	"context"

	"github.com/stretchr/testify/suite"

	"naturalize/internal/records/forms"
	"naturalize/pkg/platform/sentinel"
)

// contractSuite holds the behaviors every record backend must share.
type contractSuite struct {
	suite.Suite
	store Store
}

func (s *contractSuite) TestCreateAndRead() {
	ctx := context.Background()
	id, err := s.store.CreateRecord(ctx, forms.Master, map[string]string{
		forms.FieldANumber:           "A012345678",
		forms.FieldApplicationDate:   "2025-09-15",
		forms.FieldControllingFactor: "SC",
	})
	s.Require().NoError(err)
	s.NotEmpty(id)

	ok, err := s.store.Exists(ctx, id)
	s.NoError(err)
	s.True(ok)

	v, ok, err := s.store.ReadField(ctx, id, forms.FieldANumber)
	s.NoError(err)
	s.True(ok)
	s.Equal("A012345678", v)

	fields, err := s.store.ReadFields(ctx, id, []string{forms.FieldApplicationDate, forms.FieldControllingFactor, forms.FieldUnlockDate})
	s.NoError(err)
	s.Equal(map[string]string{
		forms.FieldApplicationDate:   "2025-09-15",
		forms.FieldControllingFactor: "SC",
	}, fields)
}

func (s *contractSuite) TestMissingRecord() {
	ctx := context.Background()

	ok, err := s.store.Exists(ctx, "missing")
	s.NoError(err)
	s.False(ok)

	_, ok, err = s.store.ReadField(ctx, "missing", forms.FieldANumber)
	s.NoError(err)
	s.False(ok)

	fields, err := s.store.ReadFields(ctx, "missing", []string{forms.FieldANumber})
	s.NoError(err)
	s.Empty(fields)

	err = s.store.WriteField(ctx, "missing", forms.FieldUnlockDate, "2025-03-15")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *contractSuite) TestWriteFieldOverwrites() {
	ctx := context.Background()
	id, err := s.store.CreateRecord(ctx, forms.Master, map[string]string{forms.FieldControllingFactor: "LPR"})
	s.Require().NoError(err)

	s.Require().NoError(s.store.WriteField(ctx, id, forms.FieldControllingFactor, "DM"))
	s.Require().NoError(s.store.WriteField(ctx, id, forms.FieldUnlockDate, "2025-03-15"))

	fields, err := s.store.ReadFields(ctx, id, forms.MasterFields)
	s.NoError(err)
	s.Equal("DM", fields[forms.FieldControllingFactor])
	v, _, _ := s.store.ReadField(ctx, id, forms.FieldUnlockDate)
	s.Equal("2025-03-15", v)
}

func (s *contractSuite) TestFindRecordsByField() {
	ctx := context.Background()
	first, err := s.store.CreateRecord(ctx, forms.Travel, map[string]string{forms.FieldParent: "m1"})
	s.Require().NoError(err)
	_, err = s.store.CreateRecord(ctx, forms.Travel, map[string]string{forms.FieldParent: "m2"})
	s.Require().NoError(err)
	second, err := s.store.CreateRecord(ctx, forms.Travel, map[string]string{forms.FieldParent: "m1"})
	s.Require().NoError(err)
	// Same parent on another form is not a travel record.
	_, err = s.store.CreateRecord(ctx, forms.Residence, map[string]string{forms.FieldParent: "m1"})
	s.Require().NoError(err)

	ids, err := s.store.FindRecordsByField(ctx, forms.Travel, forms.FieldParent, "m1")
	s.NoError(err)
	s.Equal([]string{first, second}, ids)

	ids, err = s.store.FindRecordsByField(ctx, forms.Travel, forms.FieldParent, "nobody")
	s.NoError(err)
	s.Empty(ids)
}
