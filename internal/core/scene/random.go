package scene

import (
	"fmt"
	"math/rand"

	"chosenoffset.com/raycaster/internal/core/obstacle"
)

// BoxRange bounds the integer positions and sizes of generated boxes.
// Every range is half-open: [Min, Max).
type BoxRange struct {
	Count                  int
	MinX, MaxX, MinY, MaxY int
	MinSize, MaxSize       int
}

// Validate checks that every range is non-empty and sizes are positive.
func (br BoxRange) Validate() error {
	if br.Count < 0 {
		return fmt.Errorf("negative box count: %d", br.Count)
	}
	if br.MaxX <= br.MinX || br.MaxY <= br.MinY {
		return fmt.Errorf("empty position range: x [%d, %d) y [%d, %d)", br.MinX, br.MaxX, br.MinY, br.MaxY)
	}
	if br.MinSize < 1 || br.MaxSize <= br.MinSize {
		return fmt.Errorf("invalid size range: [%d, %d)", br.MinSize, br.MaxSize)
	}
	return nil
}

// RandomBoxes places br.Count boxes using rng. The same seed always yields
// the same boxes in the same order.
func RandomBoxes(rng *rand.Rand, br BoxRange) ([]obstacle.Obstacle, error) {
	if err := br.Validate(); err != nil {
		return nil, err
	}

	boxes := make([]obstacle.Obstacle, 0, br.Count)
	for i := 0; i < br.Count; i++ {
		x := randomInt(rng, br.MinX, br.MaxX)
		y := randomInt(rng, br.MinY, br.MaxY)
		w := randomInt(rng, br.MinSize, br.MaxSize)
		h := randomInt(rng, br.MinSize, br.MaxSize)
		boxes = append(boxes, obstacle.NewRect(float64(x), float64(y), float64(w), float64(h)))
	}
	return boxes, nil
}

func randomInt(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min)
}
