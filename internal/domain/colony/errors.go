package colony

import "fmt"

// NoAddReason classifies why a unit cannot be admitted to a work location.
type NoAddReason string

const (
	ReasonNone         NoAddReason = "NONE"
	ReasonNotWorkable  NoAddReason = "NOT_WORKABLE"
	ReasonCapacityFull NoAddReason = "CAPACITY_FULL"
	ReasonMissingSkill NoAddReason = "MISSING_SKILL"
)

// AdmissionError indicates an attempt to place an ineligible unit in a work
// location. The caller is expected to pre-check eligibility; this error is a
// logic fault, not a retriable condition.
type AdmissionError struct {
	Reason     NoAddReason
	UnitID     string
	BuildingID string
}

func (e *AdmissionError) Error() string {
	return fmt.Sprintf("cannot add unit %s to %s: %s", e.UnitID, e.BuildingID, e.Reason)
}

// WrongOutputTypeError indicates the caller passed an output stock of a type
// other than the work location's output goods type.
type WrongOutputTypeError struct {
	Expected string
	Got      string
}

func (e *WrongOutputTypeError) Error() string {
	return fmt.Sprintf("wrong output type: %s should have been %s", e.Got, e.Expected)
}

// MissingInputError indicates the caller supplied no entry for the work
// location's input goods type. A true zero must be passed as a zero-amount
// entry.
type MissingInputError struct {
	GoodsType string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("no input goods of type %s available", e.GoodsType)
}
