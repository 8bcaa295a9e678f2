// Package game implements the snakeplus simulation core: deterministic
// grid-stepped movement, collision and state logic, item spawning, and timed
// power-up effects. It contains no rendering or terminal dependencies; the
// platform layer consumes read-only snapshots and per-tick events.
package game

// Point is a cell coordinate on the playfield grid.
type Point struct {
	X, Y int
}

// Add returns the point translated by the given delta.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Grid is the playfield: W x H cells with (0,0) at the top-left corner.
type Grid struct {
	W, H int
}

// Contains reports whether the point lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Wrap normalizes the point modulo the grid dimensions, so a cell one past
// any edge reappears on the opposite edge.
func (g Grid) Wrap(p Point) Point {
	p.X %= g.W
	if p.X < 0 {
		p.X += g.W
	}
	p.Y %= g.H
	if p.Y < 0 {
		p.Y += g.H
	}
	return p
}

// Center returns the middle cell, where the snake spawns.
func (g Grid) Center() Point {
	return Point{X: g.W / 2, Y: g.H / 2}
}
