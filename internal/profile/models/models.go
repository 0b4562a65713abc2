// Package models defines the logical user-profile contract: per-user string
// key/value entries plus atomic batches of mutations.
package models

// Profile keys owned by the intake core.
const (
	KeyANumber        = "a_number"
	KeyMasterRecordID = "master_record_id"
	KeyDateOfBirth    = "date_of_birth"

	KeyUnlockDate             = "unlock_date"
	KeyLockoutMessage         = "lockout_message"
	KeyControllingDescription = "controlling_description"
)

// LockoutKeys are always written or cleared together.
var LockoutKeys = []string{KeyUnlockDate, KeyLockoutMessage, KeyControllingDescription}

// Mutation is one change to a user's profile. Delete wins over Value.
type Mutation struct {
	Key    string
	Value  string
	Delete bool
}

// SetOp builds a set mutation.
func SetOp(key, value string) Mutation {
	return Mutation{Key: key, Value: value}
}

// DeleteOp builds a delete mutation.
func DeleteOp(key string) Mutation {
	return Mutation{Key: key, Delete: true}
}

// DeleteAll builds delete mutations for every key.
func DeleteAll(keys ...string) []Mutation {
	out := make([]Mutation, 0, len(keys))
	for _, k := range keys {
		out = append(out, DeleteOp(k))
	}
	return out
}
