package factor

// AssessmentStatus is the preliminary-eligibility status that puts an
// applicant into purgatory.
const AssessmentStatus = "Eligibility Assessment"

// AssessmentDescriptions are the legacy controlling-description codes that
// also mean "more than one lookback window from filing". Matched exactly.
var AssessmentDescriptions = [...]string{
	"LPRC - 1C",
	"LPRC - 2C",
	"LPRC - 3C",
	"LPR3 - 1G",
	"LPR3 - 2G",
	"LPR5 - 1G",
	"LPR5 - 2G",
	"LPRM - 1C",
}

// IsAssessmentDescription reports an exact match against the legacy table.
func IsAssessmentDescription(desc string) bool {
	for _, d := range AssessmentDescriptions {
		if d == desc {
			return true
		}
	}
	return false
}

// IsAssessment reports whether either signal marks the applicant as being
// in eligibility-assessment status.
func IsAssessment(status, controllingDesc string) bool {
	return status == AssessmentStatus || IsAssessmentDescription(controllingDesc)
}
