package types

// ValueType records how a TT-stored Value relates to the search window
// that produced it, mirroring the classic alpha-beta bound kinds.
type ValueType uint8

const (
	ValueTypeNone  ValueType = iota
	ValueExact
	ValueUpperBound // failed low: true value <= stored value
	ValueLowerBound // failed high: true value >= stored value
)

func (vt ValueType) String() string {
	switch vt {
	case ValueExact:
		return "EXACT"
	case ValueUpperBound:
		return "UPPER"
	case ValueLowerBound:
		return "LOWER"
	default:
		return "NONE"
	}
}
