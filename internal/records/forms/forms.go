// Package forms names the forms and fields the eligibility core reads and
// writes in the record store.
package forms

// Form identifiers.
const (
	Master    = "naturalization_master"
	Residence = "residence_history"
	Travel    = "time_outside_us"
)

// Master record fields.
const (
	FieldANumber           = "a_number"
	FieldDateOfBirth       = "date_of_birth"
	FieldControllingFactor = "controlling_factor"
	FieldApplicationDate   = "application_date"
	FieldUnlockDate        = "unlock_date"
)

// Fields shared by child records.
const (
	// FieldParent holds the master record id a child record belongs to.
	FieldParent   = "master_record_id"
	FieldDuration = "duration_days"
)

// Residence fields.
const (
	FieldResidenceStart = "residence_start"
	FieldResidenceEnd   = "residence_end"
	FieldResidenceState = "residence_state"
)

// Travel fields.
const (
	FieldDeparture = "departure_date"
	FieldReturn    = "return_date"
	FieldCountries = "countries_visited"
)

// ResidenceFields lists every field the presence loader reads for a residence.
var ResidenceFields = []string{FieldParent, FieldResidenceStart, FieldResidenceEnd, FieldDuration, FieldResidenceState}

// TravelFields lists every field the presence loader reads for a trip.
var TravelFields = []string{FieldParent, FieldDeparture, FieldReturn, FieldDuration, FieldCountries}

// MasterFields lists the master record fields read per presence calculation.
var MasterFields = []string{FieldControllingFactor, FieldApplicationDate}
