package option

import "strconv"

type MaybeOption int

const (
	None MaybeOption = iota
	Some
)

func (m MaybeOption) String() string {
	if m == Some {
		return "Some"
	}
	return "None"
}

// Type is an interface for optional values.
type Type interface {
	IsNone() bool
	Equals(other interface{}) bool
}

// --- StringT ---------------------------------------------------------------

// StringT is an option type for strings. The zero value is None.
type StringT struct {
	s   string
	set bool
}

// SomeString creates an optional string with a value of s.
// s may be empty.
func SomeString(s string) StringT {
	return StringT{s: s, set: true}
}

// String creates an optional string without a value.
func String() StringT {
	return StringT{}
}

// IsNone returns true if o is unset.
func (o StringT) IsNone() bool {
	return !o.set
}

// Option returns Some or None.
func (o StringT) Option() MaybeOption {
	if o.set {
		return Some
	}
	return None
}

// Unwrap returns the value of o, or "" if o is None.
func (o StringT) Unwrap() string {
	return o.s
}

// Get returns the value of o and whether it is set.
func (o StringT) Get() (string, bool) {
	return o.s, o.set
}

// IsBlank returns true if o is None or holds the empty string.
func (o StringT) IsBlank() bool {
	return !o.set || o.s == ""
}

// OrElse returns the value of o, or dflt if o is None.
func (o StringT) OrElse(dflt string) string {
	if !o.set {
		return dflt
	}
	return o.s
}

// Equals compares o to a string, to another StringT, or to a MaybeOption.
// Matching against None is true for unset values only.
func (o StringT) Equals(other interface{}) bool {
	switch x := other.(type) {
	case string:
		return o.set && o.s == x
	case StringT:
		return o == x
	case MaybeOption:
		return o.Option() == x
	}
	return false
}

func (o StringT) String() string {
	if o.IsNone() {
		return "String.None"
	}
	return strconv.Quote(o.s)
}

var _ Type = StringT{}
