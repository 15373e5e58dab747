package kernel

import "errors"

var (
	// ErrLengthMismatch is wrapped by the panic value when operand lengths differ.
	ErrLengthMismatch = errors.New("kernel: length mismatch")

	// ErrMisaligned is wrapped by the panic value when TierVectorAligned is
	// forced on operands that are not aligned to the vector width.
	ErrMisaligned = errors.New("kernel: operand not aligned to vector width")
)

// Tier identifies one implementation strategy of a primitive.
type Tier int

const (
	// TierScalar processes one element at a time.
	TierScalar Tier = iota
	// TierVectorUnaligned uses vector registers with unaligned loads.
	TierVectorUnaligned
	// TierVectorAligned uses vector registers with aligned loads and stores.
	TierVectorAligned
)

// Tiers lists every tier in ascending order of expected speed.
var Tiers = []Tier{TierScalar, TierVectorUnaligned, TierVectorAligned}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierVectorUnaligned:
		return "vector-unaligned"
	case TierVectorAligned:
		return "vector-aligned"
	default:
		return "unknown"
	}
}
