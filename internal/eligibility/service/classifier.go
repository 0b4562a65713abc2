package service

import (
	"context"

	"naturalize/internal/eligibility/factor"
	"naturalize/internal/eligibility/models"
)

// Classifier decides which controlling factor governs an applicant.
type Classifier interface {
	DetermineControllingFactor(ctx context.Context, in models.ClassifierInput) (factor.Code, error)
}

// DefaultClassifier assigns every applicant the default factor (LPR). Staff
// correct the factor on the master record when another one applies.
type DefaultClassifier struct{}

func (DefaultClassifier) DetermineControllingFactor(context.Context, models.ClassifierInput) (factor.Code, error) {
	return factor.Default, nil
}
