package params

import "fmt"

// Validate checks basic shape and sizes of the parameter set.
func Validate(p *Parameters) error {
	if p.Width < 2 || p.Width > MaxInputs+1 {
		return fmt.Errorf("poseidonbn254: state width out of range: %d", p.Width)
	}
	if p.FullRounds%2 != 0 {
		return fmt.Errorf("poseidonbn254: full rounds must be even, got %d", p.FullRounds)
	}
	if p.PartialRounds < 1 {
		return fmt.Errorf("poseidonbn254: partial rounds must be positive, got %d", p.PartialRounds)
	}
	if want := p.Width * (p.FullRounds + p.PartialRounds); len(p.RoundConstants) != want {
		return fmt.Errorf("poseidonbn254: round constant length mismatch (want %d, got %d)", want, len(p.RoundConstants))
	}
	if want := p.Width * p.Width; len(p.MDS) != want {
		return fmt.Errorf("poseidonbn254: mds length mismatch (want %d, got %d)", want, len(p.MDS))
	}
	return nil
}
