package game

import (
	"math/rand"

	"github.com/vovakirdan/snakeplus/internal/config"
)

// FoodKind distinguishes the three food types.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodGold
	FoodPoison
)

func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "NORMAL"
	case FoodGold:
		return "GOLD"
	case FoodPoison:
		return "POISON"
	default:
		return "UNKNOWN"
	}
}

// Food is an edible item on the grid. Created by the Spawner, destroyed on
// consumption.
type Food struct {
	Pos  Point
	Kind FoodKind
}

// PowerUpKind distinguishes the three power-up types.
type PowerUpKind int

const (
	PowerSlow PowerUpKind = iota
	PowerGhost
	PowerMulti

	numPowerUpKinds = 3
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerSlow:
		return "SLOW"
	case PowerGhost:
		return "GHOST"
	case PowerMulti:
		return "MULTI"
	default:
		return "UNKNOWN"
	}
}

// PowerUp is a timed-effect pickup on the grid. It stays on the board until
// eaten; there is no despawn timer.
type PowerUp struct {
	Pos  Point
	Kind PowerUpKind
}

// Free-cell sampling gives up on random placement after this many rejected
// draws and falls back to a deterministic scan, so spawning terminates even
// on a nearly full grid.
const maxSpawnTries = 10000

// Obstacle runs span between minRunLen and maxRunLen cells.
const (
	minRunLen = 2
	maxRunLen = 6
)

// spawnClearRadius is the half-width of the square kept free of obstacles
// around the snake's spawn cell.
const spawnClearRadius = 2

// Spawner places obstacles, food, and power-ups on unoccupied cells.
type Spawner struct {
	grid Grid
	rng  *rand.Rand
}

// NewSpawner creates a spawner for the given grid using the given RNG.
func NewSpawner(g Grid, rng *rand.Rand) *Spawner {
	return &Spawner{grid: g, rng: rng}
}

// FreeCell uniformly samples a cell outside the occupancy set. After
// maxSpawnTries rejected samples it scans the grid row-major for the first
// free cell. Returns false only when every cell is occupied.
func (sp *Spawner) FreeCell(occupied map[Point]struct{}) (Point, bool) {
	for range maxSpawnTries {
		c := Point{X: sp.rng.Intn(sp.grid.W), Y: sp.rng.Intn(sp.grid.H)}
		if _, taken := occupied[c]; !taken {
			return c, true
		}
	}
	for y := 0; y < sp.grid.H; y++ {
		for x := 0; x < sp.grid.W; x++ {
			c := Point{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				return c, true
			}
		}
	}
	return Point{}, false
}

// GenerateObstacles places contiguous horizontal or vertical runs of cells
// until n cells are placed or the retry budget is exhausted. A square zone
// around the snake spawn stays clear. Under-filling is acceptable; the
// result is never an error.
func (sp *Spawner) GenerateObstacles(n int, spawn Point) map[Point]struct{} {
	obstacles := make(map[Point]struct{})
	if n <= 0 {
		return obstacles
	}

	forbidden := map[Point]struct{}{spawn: {}}
	for dy := -spawnClearRadius; dy <= spawnClearRadius; dy++ {
		for dx := -spawnClearRadius; dx <= spawnClearRadius; dx++ {
			forbidden[Point{X: spawn.X + dx, Y: spawn.Y + dy}] = struct{}{}
		}
	}

	placed := 0
	for tries := 0; placed < n && tries < n*30; tries++ {
		length := minRunLen + sp.rng.Intn(maxRunLen-minRunLen+1)
		horizontal := sp.rng.Intn(2) == 0
		start := Point{X: sp.rng.Intn(sp.grid.W), Y: sp.rng.Intn(sp.grid.H)}

		run := make([]Point, 0, length)
		ok := true
		for i := 0; i < length; i++ {
			c := start
			if horizontal {
				c.X += i
			} else {
				c.Y += i
			}
			if !sp.grid.Contains(c) {
				ok = false
				break
			}
			if _, hit := forbidden[c]; hit {
				ok = false
				break
			}
			if _, hit := obstacles[c]; hit {
				ok = false
				break
			}
			run = append(run, c)
		}
		if !ok {
			continue
		}

		for _, c := range run {
			obstacles[c] = struct{}{}
			placed++
			if placed >= n {
				break
			}
		}
	}
	return obstacles
}

// SpawnFood places one food item on a free cell. The kind is a weighted
// draw: poison with probability PoisonChance, otherwise gold with
// probability GoldChance, otherwise normal.
func (sp *Spawner) SpawnFood(occupied map[Point]struct{}, params config.DifficultyParams) (Food, bool) {
	pos, ok := sp.FreeCell(occupied)
	if !ok {
		return Food{}, false
	}
	kind := FoodNormal
	r := sp.rng.Float64()
	switch {
	case r < params.PoisonChance:
		kind = FoodPoison
	case r < params.PoisonChance+params.GoldChance:
		kind = FoodGold
	}
	return Food{Pos: pos, Kind: kind}, true
}

// SpawnPowerUp places one power-up of a uniformly chosen kind on a free
// cell.
func (sp *Spawner) SpawnPowerUp(occupied map[Point]struct{}) (PowerUp, bool) {
	pos, ok := sp.FreeCell(occupied)
	if !ok {
		return PowerUp{}, false
	}
	kind := PowerUpKind(sp.rng.Intn(numPowerUpKinds))
	return PowerUp{Pos: pos, Kind: kind}, true
}
