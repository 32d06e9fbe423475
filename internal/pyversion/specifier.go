// Package pyversion parses Python version specifier expressions and resolves
// them to a concrete target version.
package pyversion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Op is a version comparison operator.
type Op string

// Supported comparison operators.
const (
	OpEq     Op = "=="
	OpGte    Op = ">="
	OpLte    Op = "<="
	OpGt     Op = ">"
	OpLt     Op = "<"
	OpCompat Op = "~="
)

// Version is a dotted numeric version with two or three components.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	HasPatch bool
}

// String renders the version with full precision.
func (v Version) String() string {
	if v.HasPatch {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// MajorMinor renders the version truncated to its first two components.
func (v Version) MajorMinor() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Constraint pairs a comparison operator with a version.
type Constraint struct {
	Op      Op
	Version Version
}

func (c Constraint) String() string {
	return string(c.Op) + c.Version.String()
}

// ConstraintSet is an ordered collection of constraints on the same runtime.
// An empty set means "no constraint expressed".
type ConstraintSet []Constraint

// clausePattern matches one specifier clause: an optional operator followed by
// a two- or three-component dotted version. A clause with no operator is an
// exact pin; Pipfiles and .python-version files carry bare versions.
var clausePattern = regexp.MustCompile(`^(==|>=|<=|~=|>|<)?\s*(\d+)\.(\d+)(?:\.(\d+))?$`)

// ParseSpecifier splits expr on commas and parses each clause into a
// Constraint. Malformed clauses are dropped, not fatal; they are returned so
// callers can surface a warning per dropped segment.
func ParseSpecifier(expr string) (ConstraintSet, []string) {
	var set ConstraintSet
	var dropped []string
	for _, segment := range strings.Split(expr, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		c, ok := parseClause(segment)
		if !ok {
			dropped = append(dropped, segment)
			continue
		}
		set = append(set, c)
	}
	return set, dropped
}

// parseClause parses a single operator+version clause.
func parseClause(clause string) (Constraint, bool) {
	m := clausePattern.FindStringSubmatch(clause)
	if m == nil {
		return Constraint{}, false
	}
	op := Op(m[1])
	if op == "" {
		op = OpEq
	}
	v := Version{
		Major: mustAtoi(m[2]),
		Minor: mustAtoi(m[3]),
	}
	if m[4] != "" {
		v.Patch = mustAtoi(m[4])
		v.HasPatch = true
	}
	return Constraint{Op: op, Version: v}, true
}

// mustAtoi converts a digits-only submatch; the pattern guarantees validity.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
