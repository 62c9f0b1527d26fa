package domain

import "sort"

// KnownFlagKeys is the closed set of flag keys an employee may be tagged
// with. Flag updates referencing anything outside this set are rejected
// before any mutation is applied.
var KnownFlagKeys = map[string]struct{}{
	"flight_risk":          {},
	"promotion_ready":      {},
	"new_to_role":          {},
	"succession_candidate": {},
	"development_needed":   {},
	"key_talent":           {},
}

// IsKnownFlagKey reports whether key belongs to the known flag set.
func IsKnownFlagKey(key string) bool {
	_, ok := KnownFlagKeys[key]
	return ok
}

// Employee represents one roster member inside a review session. The session
// holds two copies of every employee: the immutable original snapshot taken
// at upload time and the current working copy that mutations apply to.
type Employee struct {
	EmployeeID    int64  `json:"employeeID"`
	Name          string `json:"name"`
	Title         string `json:"title"`
	Function      string `json:"function"`
	Location      string `json:"location"`
	Manager       string `json:"manager"`
	Performance   Level  `json:"performance"`
	Potential     Level  `json:"potential"`
	GridPosition  int    `json:"gridPosition"`
	DonutPosition int    `json:"donutPosition"`
	// Flags has set semantics: members unique, order irrelevant. It is kept
	// sorted so structural comparison and serialization stay stable.
	Flags []string `json:"flags"`
	Notes string   `json:"notes"`
	// ModifiedInSession is derived: true iff the session ledger holds at
	// least one active event for this employee.
	ModifiedInSession bool `json:"modifiedInSession"`
}

// Clone returns a deep copy of the employee.
func (e Employee) Clone() Employee {
	c := e
	c.Flags = append([]string(nil), e.Flags...)
	return c
}

// HasFlag reports whether the employee carries the given flag key.
func (e Employee) HasFlag(key string) bool {
	for _, f := range e.Flags {
		if f == key {
			return true
		}
	}
	return false
}

// NormalizeFlags deduplicates and sorts a flag list into set form.
func NormalizeFlags(flags []string) []string {
	seen := make(map[string]struct{}, len(flags))
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
