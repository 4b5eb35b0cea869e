package erfinv

// Scheme selects the approximation variant. The scheme fixes both the
// coefficient table and the evaluation algorithm; the two are never mixed.
type Scheme int

const (
	// FastApprox is the short 2-branch rational expansion.
	FastApprox Scheme = iota
	// PreciseApprox is the 7-region rational approximation.
	PreciseApprox
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case FastApprox:
		return "fast"
	case PreciseApprox:
		return "precise"
	default:
		return "unknown"
	}
}
