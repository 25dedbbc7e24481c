package params

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForInputsRange(t *testing.T) {
	_, err := ForInputs(0)
	require.Error(t, err)
	_, err = ForInputs(MaxInputs + 1)
	require.Error(t, err)

	for n := 1; n <= MaxInputs; n++ {
		p, err := ForInputs(n)
		require.NoError(t, err)
		require.Equal(t, n+1, p.Width)
		require.NoError(t, Validate(p))
	}
}

func TestRoundSchedule(t *testing.T) {
	wantPartial := []int{56, 57, 56, 60, 60, 63, 64, 63, 60, 66, 60, 65, 70, 60, 64, 68}
	for n := 1; n <= MaxInputs; n++ {
		p, err := ForInputs(n)
		require.NoError(t, err)
		require.Equal(t, 8, p.FullRounds)
		require.Equal(t, wantPartial[n-1], p.PartialRounds)
		require.Len(t, p.RoundConstants, p.Width*(p.FullRounds+p.PartialRounds))
		require.Len(t, p.MDS, p.Width*p.Width)
	}
}

// Pins the corners of the smallest and widest tables so a regeneration that
// drifts from the canonical stream cannot slip through.
func TestConstantAnchors(t *testing.T) {
	small, err := ForInputs(1)
	require.NoError(t, err)
	require.Equal(t,
		"4417881134626180770308697923359573201005643519861877412381846989312604493735",
		small.RoundConstants[0].String())
	require.Equal(t,
		"17467570179597572575614276429760169990940929887711661192333523245667228809456",
		small.RoundConstants[len(small.RoundConstants)-1].String())
	require.Equal(t,
		"2910766817845651019878574839501801340070030115151021261302834310722729507541",
		small.MDS[0].String())
	require.Equal(t,
		"8348174920934122550483593999453880006756108121341067172388445916328941978568",
		small.MDS[len(small.MDS)-1].String())

	wide, err := ForInputs(16)
	require.NoError(t, err)
	require.Equal(t,
		"21579410516734741630578831791708254656585702717204712919233299001262271512412",
		wide.RoundConstants[0].String())
	require.Equal(t,
		"19116371381269652319147699604019975103087973589614811479290794650138683901396",
		wide.RoundConstants[len(wide.RoundConstants)-1].String())
	require.Equal(t,
		"11497693837059016825308731789443585196852778517742143582474723527597064448312",
		wide.MDS[0].String())
	require.Equal(t,
		"13228220894074693515947418568115512670466893414535562052872530653586084906533",
		wide.MDS[len(wide.MDS)-1].String())
}

func TestValidateRejectsBadShapes(t *testing.T) {
	good, err := ForInputs(2)
	require.NoError(t, err)

	bad := *good
	bad.RoundConstants = good.RoundConstants[:len(good.RoundConstants)-1]
	require.Error(t, Validate(&bad))

	bad = *good
	bad.MDS = good.MDS[:len(good.MDS)-1]
	require.Error(t, Validate(&bad))

	bad = *good
	bad.FullRounds = 7
	require.Error(t, Validate(&bad))

	bad = *good
	bad.PartialRounds = 0
	require.Error(t, Validate(&bad))

	bad = *good
	bad.Width = 0
	require.Error(t, Validate(&bad))
}

func TestForInputsConcurrent(t *testing.T) {
	const goroutines = 16
	results := make([]*Parameters, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			p, err := ForInputs(7)
			if err != nil {
				t.Errorf("concurrent ForInputs: %v", err)
				return
			}
			results[g] = p
		}(g)
	}
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		require.Same(t, results[0], results[g])
	}
}
