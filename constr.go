package ticktime

/*
constr.go contains constraint and constraint group components which
serve to implement optional validation of temporal values.
*/

import (
	"golang.org/x/exp/constraints"
)

/*
Constraint implements a generic closure function signature used to vet a
newly constructed value before it is released to the caller.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a slice type comprised of [Constraint] instances,
evaluated in the order in which they were added.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain executes each [Constraint] residing within the receiver against
x, returning the first error encountered, if any.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint derives a [Constraint] for type T from a [Constraint] for
type U by way of the provided conversion closure.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = mkerr("value is out of range")
		}
		return
	}
}

// PropertyConstraint returns a Constraint that applies a user-defined check function.
// That function should return nil if the property is satisfied or an error otherwise.
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

// DurationRangeConstraint returns a Constraint for Duration values to ensure that the given value
// is not less than min and not greater than max.
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return func(val Duration) error {
		if val.LessThan(min) || max.LessThan(val) {
			return constraintViolationf("duration ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

// InstantRangeConstraint returns a Constraint for Instant values to ensure that the given value
// is not before min and not after max.
func InstantRangeConstraint(min, max Instant) Constraint[Instant] {
	return func(val Instant) error {
		if val.Before(min) || val.After(max) {
			return constraintViolationf("instant ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
OffsetLimitConstraint returns a [Constraint] which rejects any [OffsetInstant]
whose offset magnitude exceeds fourteen hours. Offsets are advisory by
default; use this to opt in to strict enforcement at construction.
*/
func OffsetLimitConstraint() Constraint[OffsetInstant] {
	return func(val OffsetInstant) error {
		if !IsValidOffset(val.Offset()) {
			return constraintViolationf("offset ", val.Offset().String(),
				" exceeds the fourteen hour limit")
		}
		return nil
	}
}

func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(constraints) && !passed; i++ {
			passed = constraints[i](x) == nil
		}

		if !passed {
			err = mkerrf("none of ", itoa(len(constraints)), " union constraints satisfied")
		}
		return
	}
}

func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}
