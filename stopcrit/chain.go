package stopcrit

// Chain composes criteria with any-of semantics: Stop reports true as soon
// as one member fires (spec §4.10).
type Chain []Criterion

// NewChain returns a Chain over the given criteria.
func NewChain(criteria ...Criterion) Chain { return Chain(criteria) }

func (c Chain) Stop(s State) bool {
	for _, crit := range c {
		if crit.Stop(s) {
			return true
		}
	}
	return false
}
