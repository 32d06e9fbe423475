package pyversion

import (
	"fmt"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

// ResolutionError reports a constraint set that cannot be mapped to a version,
// such as an exclusive upper bound whose minor component cannot be decremented.
type ResolutionError struct {
	Constraint Constraint
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf(messages.ResolveMinorUnderflowFmt, e.Constraint.String())
}

// Resolve maps a constraint set to a concrete version string. An empty result
// with a nil error means no version could be derived ("unresolved"), which is
// not an error; callers decide that policy.
//
// Policy:
//   - an exact pin always wins, at full precision;
//   - with an upper bound, the most restrictive one decides: exclusive bounds
//     yield the preceding minor, inclusive bounds are used as-is, always
//     truncated to major.minor;
//   - with only lower bounds the stated version is used as-is, truncated;
//     never a higher version than written;
//   - with no constraints at all the result is unresolved.
func Resolve(set ConstraintSet) (string, error) {
	for _, c := range set {
		if c.Op == OpEq {
			return c.Version.String(), nil
		}
	}

	var upper *Constraint
	var lower *Constraint
	for i := range set {
		c := set[i]
		switch c.Op {
		case OpLt, OpLte:
			if upper == nil || lessRestrictiveUpper(*upper, c) {
				upper = &set[i]
			}
		case OpGt, OpGte, OpCompat:
			if lower == nil || greaterMajorMinor(c.Version, lower.Version) {
				lower = &set[i]
			}
		}
	}

	if upper != nil {
		v := upper.Version
		if upper.Op == OpLt {
			if v.Minor == 0 {
				return "", &ResolutionError{Constraint: *upper}
			}
			return fmt.Sprintf("%d.%d", v.Major, v.Minor-1), nil
		}
		return v.MajorMinor(), nil
	}
	if lower != nil {
		return lower.Version.MajorMinor(), nil
	}
	return "", nil
}

// ResolveExpr parses and resolves a raw specifier expression in one step,
// returning any dropped malformed clauses alongside the result.
func ResolveExpr(expr string) (version string, dropped []string, err error) {
	set, dropped := ParseSpecifier(expr)
	version, err = Resolve(set)
	return version, dropped, err
}

// lessRestrictiveUpper reports whether candidate is a tighter upper bound than
// current. Patch components are ignored; on an equal major.minor an exclusive
// bound is tighter than an inclusive one.
func lessRestrictiveUpper(current, candidate Constraint) bool {
	if greaterMajorMinor(current.Version, candidate.Version) {
		return true
	}
	if sameMajorMinor(current.Version, candidate.Version) {
		return current.Op == OpLte && candidate.Op == OpLt
	}
	return false
}

func sameMajorMinor(a, b Version) bool {
	return a.Major == b.Major && a.Minor == b.Minor
}

func greaterMajorMinor(a, b Version) bool {
	if a.Major != b.Major {
		return a.Major > b.Major
	}
	return a.Minor > b.Minor
}
