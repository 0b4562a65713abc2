package service

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"naturalize/internal/eligibility/factor"
	"naturalize/internal/eligibility/models"
	"naturalize/internal/eligibility/service/mocks"
	lockoutmodels "naturalize/internal/lockout/models"
	"naturalize/internal/records/forms"
	dErrors "naturalize/pkg/domain-errors"
	"naturalize/pkg/platform/audit"
	"naturalize/pkg/platform/audit/publisher"
	auditmemory "naturalize/pkg/platform/audit/store/memory"
	"naturalize/pkg/platform/diagnostic"
)

type EligibilityServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	lockouts *mocks.MockLockouts
	masters  *mocks.MockMasterRecords
	records  *mocks.MockRecordWriter
	service  *Service
}

func TestEligibilityServiceSuite(t *testing.T) {
	suite.Run(t, new(EligibilityServiceSuite))
}

func (s *EligibilityServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lockouts = mocks.NewMockLockouts(s.ctrl)
	s.masters = mocks.NewMockMasterRecords(s.ctrl)
	s.records = mocks.NewMockRecordWriter(s.ctrl)
	svc, err := New(s.lockouts, s.masters, s.records)
	s.Require().NoError(err)
	s.service = svc
}

func (s *EligibilityServiceSuite) TestNotAnAssessment() {
	res, err := s.service.Assess(context.Background(), models.Assessment{
		UserID:                 "1",
		Status:                 "Eligible",
		ControllingDescription: "LPR5 - 3G",
		ApplicationDate:        "2025-09-15",
	})
	s.Require().NoError(err)
	s.False(res.Assessed)
}

func (s *EligibilityServiceSuite) TestAssessmentByStatus() {
	ctx := context.Background()
	s.lockouts.EXPECT().
		Set(gomock.Any(), "1", "2025-03-15", DefaultMessage(civil.Date{Year: 2025, Month: 3, Day: 15}), "").
		Return(&lockoutmodels.Lockout{}, nil)
	s.masters.EXPECT().MasterRecordID(gomock.Any(), "1").Return("m-1", nil)
	s.records.EXPECT().WriteField(gomock.Any(), "m-1", forms.FieldUnlockDate, "2025-03-15").Return(nil)
	s.records.EXPECT().WriteField(gomock.Any(), "m-1", forms.FieldControllingFactor, "LPR").Return(nil)

	res, err := s.service.Assess(ctx, models.Assessment{
		UserID:          "1",
		Status:          factor.AssessmentStatus,
		ApplicationDate: "2025-09-15",
	})
	s.Require().NoError(err)
	s.True(res.Assessed)
	s.True(res.WroteBack)
	s.Equal("2025-03-15", res.UnlockDate.String())
	s.Equal(factor.LPR, res.ControllingFactor)
	s.Equal("m-1", res.MasterRecordID)
	s.Empty(res.Diagnostics)
}

func (s *EligibilityServiceSuite) TestAssessmentByDescriptionWithUSDate() {
	ctx := context.Background()
	s.lockouts.EXPECT().Set(gomock.Any(), "2", "2025-02-28", "custom", "LPR3 - 2G").Return(&lockoutmodels.Lockout{}, nil)
	s.masters.EXPECT().MasterRecordID(gomock.Any(), "2").Return("m-2", nil)
	s.records.EXPECT().WriteField(gomock.Any(), "m-2", gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := s.service.Assess(ctx, models.Assessment{
		UserID:                 "2",
		ControllingDescription: "LPR3 - 2G",
		ApplicationDate:        "08/31/2025",
		Message:                "custom",
	})
	s.Require().NoError(err)
	s.Equal("2025-02-28", res.UnlockDate.String())
}

func (s *EligibilityServiceSuite) TestMissingMasterRecordSkipsWriteBack() {
	ctx := context.Background()
	s.lockouts.EXPECT().Set(gomock.Any(), "3", "2025-03-15", gomock.Any(), "").Return(&lockoutmodels.Lockout{}, nil)
	s.masters.EXPECT().MasterRecordID(gomock.Any(), "3").
		Return("", dErrors.New(dErrors.CodeNotFound, "applicant has no master record"))

	res, err := s.service.Assess(ctx, models.Assessment{
		UserID:          "3",
		Status:          factor.AssessmentStatus,
		ApplicationDate: "2025-09-15",
	})
	s.Require().NoError(err)
	s.True(res.Assessed)
	s.False(res.WroteBack)
	s.Require().Len(res.Diagnostics, 1)
	s.Equal(diagnostic.KindMissingReference, res.Diagnostics[0].Kind)
}

func (s *EligibilityServiceSuite) TestInvalidApplicationDateSetsNothing() {
	_, err := s.service.Assess(context.Background(), models.Assessment{
		UserID:          "4",
		Status:          factor.AssessmentStatus,
		ApplicationDate: "September 15",
	})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *EligibilityServiceSuite) TestLockoutFailurePropagates() {
	ctx := context.Background()
	s.masters.EXPECT().MasterRecordID(gomock.Any(), "5").Return("m-5", nil)
	s.lockouts.EXPECT().Set(gomock.Any(), "5", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, dErrors.Wrap(errors.New("down"), dErrors.CodeInternal, "failed to save lockout"))

	_, err := s.service.Assess(ctx, models.Assessment{
		UserID:          "5",
		Status:          factor.AssessmentStatus,
		ApplicationDate: "2025-09-15",
	})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *EligibilityServiceSuite) TestMasterLookupFailureLeavesLockoutUnset() {
	ctx := context.Background()
	s.masters.EXPECT().MasterRecordID(gomock.Any(), "7").
		Return("", dErrors.Wrap(errors.New("timeout"), dErrors.CodeInternal, "failed to load master record"))

	_, err := s.service.Assess(ctx, models.Assessment{
		UserID:          "7",
		Status:          factor.AssessmentStatus,
		ApplicationDate: "2025-09-15",
	})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

type failingClassifier struct{}

func (failingClassifier) DetermineControllingFactor(context.Context, models.ClassifierInput) (factor.Code, error) {
	return "", errors.New("rules unavailable")
}

func (s *EligibilityServiceSuite) TestClassifierFailureLeavesLockoutUnset() {
	svc, err := New(s.lockouts, s.masters, s.records, WithClassifier(failingClassifier{}))
	s.Require().NoError(err)

	s.masters.EXPECT().MasterRecordID(gomock.Any(), "8").Return("m-8", nil)

	_, err = svc.Assess(context.Background(), models.Assessment{
		UserID:          "8",
		Status:          factor.AssessmentStatus,
		ApplicationDate: "2025-09-15",
	})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *EligibilityServiceSuite) TestAssessmentAuditCarriesNoDecisionOrReason() {
	events := publisher.NewPublisher(auditmemory.NewInMemoryStore())
	svc, err := New(s.lockouts, s.masters, s.records, WithAuditPublisher(events))
	s.Require().NoError(err)

	ctx := context.Background()
	gomock.InOrder(
		s.masters.EXPECT().MasterRecordID(gomock.Any(), "9").Return("m-9", nil),
		s.lockouts.EXPECT().Set(gomock.Any(), "9", "2025-03-15", gomock.Any(), "").Return(&lockoutmodels.Lockout{}, nil),
		s.records.EXPECT().WriteField(gomock.Any(), "m-9", gomock.Any(), gomock.Any()).Return(nil).Times(2),
	)

	_, err = svc.Assess(ctx, models.Assessment{UserID: "9", Status: factor.AssessmentStatus, ApplicationDate: "2025-09-15"})
	s.Require().NoError(err)

	recorded, err := events.List(ctx, "9")
	s.Require().NoError(err)
	s.Require().Len(recorded, 1)
	s.Equal(string(audit.EventAssessmentRecorded), recorded[0].Action)
	s.Empty(recorded[0].Decision)
	s.Empty(recorded[0].Reason)
}

type fixedClassifier factor.Code

func (f fixedClassifier) DetermineControllingFactor(context.Context, models.ClassifierInput) (factor.Code, error) {
	return factor.Code(f), nil
}

func (s *EligibilityServiceSuite) TestCustomClassifier() {
	svc, err := New(s.lockouts, s.masters, s.records, WithClassifier(fixedClassifier(factor.SC)))
	s.Require().NoError(err)

	ctx := context.Background()
	s.lockouts.EXPECT().Set(gomock.Any(), "6", gomock.Any(), gomock.Any(), gomock.Any()).Return(&lockoutmodels.Lockout{}, nil)
	s.masters.EXPECT().MasterRecordID(gomock.Any(), "6").Return("m-6", nil)
	s.records.EXPECT().WriteField(gomock.Any(), "m-6", forms.FieldUnlockDate, gomock.Any()).Return(nil)
	s.records.EXPECT().WriteField(gomock.Any(), "m-6", forms.FieldControllingFactor, "SC").Return(nil)

	res, err := svc.Assess(ctx, models.Assessment{UserID: "6", Status: factor.AssessmentStatus, ApplicationDate: "2025-09-15"})
	s.Require().NoError(err)
	s.Equal(factor.SC, res.ControllingFactor)
}

func TestUnlockDate(t *testing.T) {
	svc := &Service{}
	d, err := svc.UnlockDate("2025-09-15")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2025, Month: 3, Day: 15}, d)
}

func TestDefaultClassifier(t *testing.T) {
	code, err := DefaultClassifier{}.DetermineControllingFactor(context.Background(), models.ClassifierInput{})
	require.NoError(t, err)
	assert.Equal(t, factor.LPR, code)
}
