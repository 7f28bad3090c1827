package models

import "fmt"

// LookupStatus tags the outcome of resolving a patient across the service boundary.
type LookupStatus int

const (
	LookupFound LookupStatus = iota + 1
	LookupNotFound
	LookupUnavailable
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	case LookupUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// LookupOutcome is returned by value from a patient lookup. Patient is set only
// when Status is LookupFound; Cause is set only when Status is LookupUnavailable.
type LookupOutcome struct {
	Status  LookupStatus
	Patient *Patient
	Cause   error
}

func Found(patient *Patient) LookupOutcome {
	return LookupOutcome{Status: LookupFound, Patient: patient}
}

func NotFound() LookupOutcome {
	return LookupOutcome{Status: LookupNotFound}
}

func Unavailable(cause error) LookupOutcome {
	return LookupOutcome{Status: LookupUnavailable, Cause: cause}
}

func (o LookupOutcome) IsFound() bool {
	return o.Status == LookupFound
}
