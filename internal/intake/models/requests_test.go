package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "naturalize/pkg/domain-errors"
)

func TestSetLockoutRequestValidate(t *testing.T) {
	assert.NoError(t, SetLockoutRequest{UnlockDate: "2025-03-15"}.Validate())

	err := SetLockoutRequest{UnlockDate: "  "}.Validate()
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestAssessmentRequestValidate(t *testing.T) {
	assert.NoError(t, AssessmentRequest{Status: "Eligibility Assessment"}.Validate())
	assert.NoError(t, AssessmentRequest{ControllingDescription: "anything"}.Validate())
	assert.Error(t, AssessmentRequest{ApplicationDate: "2025-01-01"}.Validate())
}

func TestRegisterApplicantRequestValidate(t *testing.T) {
	valid := RegisterApplicantRequest{UserID: "u1", ANumber: "A012345678", DateOfBirth: "1990-01-01"}
	assert.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*RegisterApplicantRequest){
		"missing user":   func(r *RegisterApplicantRequest) { r.UserID = "" },
		"missing number": func(r *RegisterApplicantRequest) { r.ANumber = "" },
		"missing dob":    func(r *RegisterApplicantRequest) { r.DateOfBirth = "" },
	} {
		t.Run(name, func(t *testing.T) {
			req := valid
			mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}
