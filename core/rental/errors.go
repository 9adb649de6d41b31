package rental

import (
	"errors"
	"fmt"
)

// ErrInvalidDays rejects rent and return requests with a non-positive
// duration.
var ErrInvalidDays = errors.New("rental duration must be at least one day")

// NotFoundError reports a vehicle id absent from the registry.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("vehicle %d not found", e.ID)
}

func (e *NotFoundError) FailureKind() string { return "not_found" }

// UnavailableError reports a rent attempt on a vehicle that is already out.
type UnavailableError struct {
	ID int
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("vehicle %d is already rented", e.ID)
}

func (e *UnavailableError) FailureKind() string { return "unavailable" }

// OverloadError reports a truck load request above the permitted maximum.
type OverloadError struct {
	ID          int
	RequestedKg float64
	MaxKg       float64
}

func (e *OverloadError) Error() string {
	return fmt.Sprintf("vehicle %d overloaded: requested %g kg, max %g kg", e.ID, e.RequestedKg, e.MaxKg)
}

func (e *OverloadError) FailureKind() string { return "overload" }

// NotRentedError reports a return for a vehicle without an active rental.
type NotRentedError struct {
	ID int
}

func (e *NotRentedError) Error() string {
	return fmt.Sprintf("vehicle %d is not rented", e.ID)
}

func (e *NotRentedError) FailureKind() string { return "not_rented" }

// RenterMismatchError reports a return attempted by someone other than the
// recorded renter.
type RenterMismatchError struct {
	ID     int
	Renter string
	Holder string
}

func (e *RenterMismatchError) Error() string {
	return fmt.Sprintf("vehicle %d is rented by %s, not %s", e.ID, e.Holder, e.Renter)
}

func (e *RenterMismatchError) FailureKind() string { return "renter_mismatch" }

// SevereDamageError reports a severe damage assessment on return. The
// vehicle has been released back to the fleet even though the return call
// fails.
type SevereDamageError struct {
	ID int
}

func (e *SevereDamageError) Error() string {
	return fmt.Sprintf("vehicle %d returned with severe damage", e.ID)
}

func (e *SevereDamageError) FailureKind() string { return "severe_damage" }

// NotElectricError reports a charge request on a combustion vehicle.
type NotElectricError struct {
	ID int
}

func (e *NotElectricError) Error() string {
	return fmt.Sprintf("vehicle %d is not electric", e.ID)
}

func (e *NotElectricError) FailureKind() string { return "not_electric" }

// FailureKind extracts the machine-readable kind from a transaction error
// for audit entries and metric labels. Unclassified errors report "error".
func FailureKind(err error) string {
	if errors.Is(err, ErrInvalidDays) {
		return "invalid_argument"
	}
	var kinded interface{ FailureKind() string }
	if errors.As(err, &kinded) {
		return kinded.FailureKind()
	}
	return "error"
}
