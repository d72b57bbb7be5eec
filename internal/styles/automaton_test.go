package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lifeGrid = 50

func aliveSet(cells []int, cols int) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for i, age := range cells {
		if age > 0 {
			out[[2]int{i % cols, i / cols}] = true
		}
	}

	return out
}

func seedCells(coords [][2]int) []int {
	cells := make([]int, lifeGrid*lifeGrid)
	for _, c := range coords {
		cells[c[1]*lifeGrid+c[0]] = 1
	}

	return cells
}

// Literal 3-step trace of a blinker: vertical, horizontal, vertical,
// horizontal. Any deviation from the standard Conway transitions (2-or-3
// survival, 3-neighbor birth, 8-neighbor toroidal) breaks this fixture.
func TestLifeStep_BlinkerTrace(t *testing.T) {
	t.Parallel()

	vertical := [][2]int{{24, 23}, {24, 24}, {24, 25}}
	horizontal := [][2]int{{23, 24}, {24, 24}, {25, 24}}

	cells := seedCells(vertical)

	cells = lifeStep(cells, lifeGrid, lifeGrid, automatonAgeCap)
	assert.Equal(t, aliveSet(seedCells(horizontal), lifeGrid), aliveSet(cells, lifeGrid), "step 1")

	cells = lifeStep(cells, lifeGrid, lifeGrid, automatonAgeCap)
	assert.Equal(t, aliveSet(seedCells(vertical), lifeGrid), aliveSet(cells, lifeGrid), "step 2")

	cells = lifeStep(cells, lifeGrid, lifeGrid, automatonAgeCap)
	assert.Equal(t, aliveSet(seedCells(horizontal), lifeGrid), aliveSet(cells, lifeGrid), "step 3")
}

// A glider translates by (1, 1) every 4 generations.
func TestLifeStep_GliderTranslates(t *testing.T) {
	t.Parallel()

	glider := [][2]int{{11, 10}, {12, 11}, {10, 12}, {11, 12}, {12, 12}}

	cells := seedCells(glider)
	for range 4 {
		cells = lifeStep(cells, lifeGrid, lifeGrid, automatonAgeCap)
	}

	moved := make([][2]int, len(glider))
	for i, c := range glider {
		moved[i] = [2]int{c[0] + 1, c[1] + 1}
	}

	assert.Equal(t, aliveSet(seedCells(moved), lifeGrid), aliveSet(cells, lifeGrid))
}

// Survivors age by one generation per step, capped.
func TestLifeStep_AgeTracking(t *testing.T) {
	t.Parallel()

	// A block is a still life: all four cells survive every step.
	block := [][2]int{{5, 5}, {6, 5}, {5, 6}, {6, 6}}
	cells := seedCells(block)

	for range automatonAgeCap + 3 {
		cells = lifeStep(cells, lifeGrid, lifeGrid, automatonAgeCap)
	}

	for _, c := range block {
		assert.Equal(t, automatonAgeCap, cells[c[1]*lifeGrid+c[0]])
	}
}

// The neighborhood is toroidal: a blinker straddling the edge must wrap.
func TestLifeStep_ToroidalWrap(t *testing.T) {
	t.Parallel()

	vertical := [][2]int{{0, lifeGrid - 1}, {0, 0}, {0, 1}}
	cells := seedCells(vertical)

	cells = lifeStep(cells, lifeGrid, lifeGrid, automatonAgeCap)

	want := aliveSet(seedCells([][2]int{{lifeGrid - 1, 0}, {0, 0}, {1, 0}}), lifeGrid)
	require.Equal(t, want, aliveSet(cells, lifeGrid))
}
