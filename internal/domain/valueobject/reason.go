package valueobject

import "strings"

// Reason is the symbolic tag explaining why a transaction contributed risk.
// Composite reasons join individual rule tags with "+".
type Reason string

const (
	ReasonLargeOut           Reason = "large_out"
	ReasonUnknownDestination Reason = "unknown_destination"
	ReasonBaseline           Reason = "baseline"
	ReasonHighFrequency      Reason = "high_frequency"
	ReasonBlacklist          Reason = "blacklist"
)

const reasonSeparator = "+"

// CompositeReason joins rule tags in firing order.
func CompositeReason(parts []Reason) Reason {
	if len(parts) == 1 {
		return parts[0]
	}
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = string(p)
	}
	return Reason(strings.Join(tags, reasonSeparator))
}

// String returns the string representation.
func (r Reason) String() string {
	return string(r)
}
