package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snakeplus/internal/config"
)

func TestFreeCellAvoidsOccupied(t *testing.T) {
	g := Grid{W: 10, H: 10}
	sp := NewSpawner(g, rand.New(rand.NewSource(42)))

	// Occupy a checkerboard half of the grid.
	occupied := make(map[Point]struct{})
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if (x+y)%2 == 0 {
				occupied[Point{X: x, Y: y}] = struct{}{}
			}
		}
	}

	for i := 0; i < 200; i++ {
		c, ok := sp.FreeCell(occupied)
		if !ok {
			t.Fatal("FreeCell failed with half the grid free")
		}
		if _, taken := occupied[c]; taken {
			t.Fatalf("FreeCell returned occupied cell %v", c)
		}
		if !g.Contains(c) {
			t.Fatalf("FreeCell returned out-of-bounds cell %v", c)
		}
	}
}

func TestFreeCellSingleGap(t *testing.T) {
	g := Grid{W: 8, H: 8}
	sp := NewSpawner(g, rand.New(rand.NewSource(7)))

	// Every cell occupied except one.
	gap := Point{X: 3, Y: 5}
	occupied := make(map[Point]struct{})
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			occupied[Point{X: x, Y: y}] = struct{}{}
		}
	}
	delete(occupied, gap)

	c, ok := sp.FreeCell(occupied)
	if !ok {
		t.Fatal("FreeCell failed with one cell free")
	}
	if c != gap {
		t.Errorf("FreeCell = %v, want %v", c, gap)
	}
}

func TestFreeCellFullGrid(t *testing.T) {
	g := Grid{W: 4, H: 4}
	sp := NewSpawner(g, rand.New(rand.NewSource(1)))

	occupied := make(map[Point]struct{})
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			occupied[Point{X: x, Y: y}] = struct{}{}
		}
	}

	if _, ok := sp.FreeCell(occupied); ok {
		t.Error("FreeCell should report failure on a full grid")
	}
}

func TestGenerateObstaclesKeepsSpawnClear(t *testing.T) {
	g := Grid{W: 40, H: 30}
	sp := NewSpawner(g, rand.New(rand.NewSource(99)))
	spawn := g.Center()

	obstacles := sp.GenerateObstacles(36, spawn)

	if len(obstacles) == 0 {
		t.Fatal("expected some obstacles on a large grid")
	}
	if len(obstacles) > 36 {
		t.Errorf("placed %d obstacle cells, want at most 36", len(obstacles))
	}
	for c := range obstacles {
		if !g.Contains(c) {
			t.Errorf("obstacle out of bounds at %v", c)
		}
		dx, dy := c.X-spawn.X, c.Y-spawn.Y
		if dx >= -2 && dx <= 2 && dy >= -2 && dy <= 2 {
			t.Errorf("obstacle at %v inside spawn clear zone", c)
		}
	}
}

func TestGenerateObstaclesZero(t *testing.T) {
	g := Grid{W: 40, H: 30}
	sp := NewSpawner(g, rand.New(rand.NewSource(5)))

	if obstacles := sp.GenerateObstacles(0, g.Center()); len(obstacles) != 0 {
		t.Errorf("expected no obstacles for n=0, got %d", len(obstacles))
	}
}

func TestGenerateObstaclesUnderfillsTinyGrid(t *testing.T) {
	// The clear zone covers the whole 5x5 grid, so no run can be placed.
	g := Grid{W: 5, H: 5}
	sp := NewSpawner(g, rand.New(rand.NewSource(3)))

	if obstacles := sp.GenerateObstacles(10, g.Center()); len(obstacles) != 0 {
		t.Errorf("expected no obstacles on a fully shielded grid, got %d", len(obstacles))
	}
}

func TestSpawnFoodKindWeights(t *testing.T) {
	g := Grid{W: 20, H: 20}
	sp := NewSpawner(g, rand.New(rand.NewSource(11)))
	occupied := map[Point]struct{}{}

	tests := []struct {
		name   string
		params config.DifficultyParams
		want   FoodKind
	}{
		{"all poison", config.DifficultyParams{PoisonChance: 1.0}, FoodPoison},
		{"all gold", config.DifficultyParams{GoldChance: 1.0}, FoodGold},
		{"all normal", config.DifficultyParams{}, FoodNormal},
	}
	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			f, ok := sp.SpawnFood(occupied, tt.params)
			if !ok {
				t.Fatalf("%s: SpawnFood failed on an empty grid", tt.name)
			}
			if f.Kind != tt.want {
				t.Fatalf("%s: got kind %s, want %s", tt.name, f.Kind, tt.want)
			}
		}
	}
}

func TestSpawnPowerUpCoversAllKinds(t *testing.T) {
	g := Grid{W: 20, H: 20}
	sp := NewSpawner(g, rand.New(rand.NewSource(13)))
	occupied := map[Point]struct{}{}

	seen := make(map[PowerUpKind]int)
	for i := 0; i < 200; i++ {
		p, ok := sp.SpawnPowerUp(occupied)
		if !ok {
			t.Fatal("SpawnPowerUp failed on an empty grid")
		}
		seen[p.Kind]++
	}

	for _, kind := range []PowerUpKind{PowerSlow, PowerGhost, PowerMulti} {
		if seen[kind] == 0 {
			t.Errorf("kind %s never drawn in 200 spawns", kind)
		}
	}
}
