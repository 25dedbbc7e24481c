package poseidonbn254

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/poseidonbn254/internal/params"
)

// MaxMultiHashInputs bounds MultiHash.
const MaxMultiHashInputs = 256

// MultiHash hashes an arbitrary-length list of field elements by chunking with
// the widest arity (16) and rehashing the chunk digests until one remains.
// Lists of at most 16 elements hash exactly like Hash. Supports up to
// MaxMultiHashInputs inputs.
func MultiHash(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	if len(inputs) == 0 {
		var zero frontend.Variable
		return zero, fmt.Errorf("poseidonbn254: need at least 1 input")
	}
	if len(inputs) > MaxMultiHashInputs {
		var zero frontend.Variable
		return zero, fmt.Errorf("poseidonbn254: too many inputs (%d > %d)", len(inputs), MaxMultiHashInputs)
	}

	current := make([]frontend.Variable, len(inputs))
	copy(current, inputs)

	for len(current) > params.MaxInputs {
		next := make([]frontend.Variable, 0, (len(current)+params.MaxInputs-1)/params.MaxInputs)
		for i := 0; i < len(current); i += params.MaxInputs {
			end := i + params.MaxInputs
			if end > len(current) {
				end = len(current)
			}
			h, err := Hash(api, current[i:end]...)
			if err != nil {
				var zero frontend.Variable
				return zero, err
			}
			next = append(next, h)
		}
		current = next
	}

	return Hash(api, current...)
}
