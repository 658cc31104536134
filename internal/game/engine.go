package game

import (
	"math/rand/v2"
	"time"
)

const (
	DefaultWidth  = 30
	DefaultHeight = 20

	MinWidth  = 10
	MinHeight = 5
	MaxCells  = 10000

	StartingLength = 4
	ScorePerFruit  = 10

	InitialDelay = 200 * time.Millisecond
	MinDelay     = 50 * time.Millisecond
	DelayStep    = 10 * time.Millisecond

	// The delay drops one step (and the level rises) each time the
	// snake's length reaches a multiple of this.
	speedUpStride = 3

	// Cap on random fruit placement attempts. On a near-full board every
	// attempt may land on the snake; the fruit then stays where it was.
	fruitPlaceTries = 10000
)

// Point is a 0-based board cell. Plain value equality.
type Point struct {
	X int
	Y int
}

type Config struct {
	Width  int
	Height int
	Seed   uint64
}

func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

type State struct {
	Width  int
	Height int

	Snake []Point // index 0 is the head
	Dir   Direction
	Fruit Point

	Score int
	Level int
	Delay time.Duration
	Over  bool

	rng *rand.Rand
}

func NewState(cfg Config) State {
	width := cfg.Width
	height := cfg.Height
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}

	// Spawn centered, heading right, head at the highest X.
	snake := make([]Point, StartingLength)
	for i := range snake {
		snake[i] = Point{X: width/2 - i, Y: height / 2}
	}

	s := State{
		Width:  width,
		Height: height,
		Snake:  snake,
		Dir:    DirRight,
		Level:  1,
		Delay:  InitialDelay,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	s.placeFruit()
	return s
}

func (s *State) Length() int {
	return len(s.Snake)
}

// SetDirection applies a direction change unless it exactly reverses the
// current direction, which is silently ignored. Changes take effect
// immediately; the last accepted change wins.
func (s *State) SetDirection(d Direction) {
	if d == s.Dir.Opposite() {
		return
	}
	s.Dir = d
}

// Step advances the simulation one tick: move the head one cell in the
// current direction, handle collisions, fruit growth and speed-up. On an
// already-over state it does nothing.
func (s *State) Step() {
	if s.Over {
		return
	}

	dx, dy := s.Dir.Delta()
	next := Point{X: s.Snake[0].X + dx, Y: s.Snake[0].Y + dy}

	// Wall collision.
	if next.X < 0 || next.X >= s.Width || next.Y < 0 || next.Y >= s.Height {
		s.Over = true
		return
	}

	// Self collision. The tail has not moved yet this tick, so its cell
	// counts as occupied too.
	for _, p := range s.Snake {
		if p == next {
			s.Over = true
			return
		}
	}

	if next == s.Fruit {
		// Grow: extend by one and keep the old tail in place.
		s.Snake = append(s.Snake, Point{})
		copy(s.Snake[1:], s.Snake[:len(s.Snake)-1])
		s.Snake[0] = next

		s.Score += ScorePerFruit
		s.placeFruit()
		if len(s.Snake)%speedUpStride == 0 && s.Delay > MinDelay {
			s.Delay -= DelayStep
			s.Level++
		}
		// Board filled: nowhere left to go.
		if len(s.Snake) >= s.Width*s.Height {
			s.Over = true
		}
		return
	}

	// Plain move: shift every segment one place toward the tail, then put
	// the new head in front.
	copy(s.Snake[1:], s.Snake[:len(s.Snake)-1])
	s.Snake[0] = next
}

// placeFruit moves the fruit to a uniformly random cell not occupied by
// the snake. Attempts are bounded; if they run out (board nearly full)
// the fruit is left where it was.
func (s *State) placeFruit() {
	for i := 0; i < fruitPlaceTries; i++ {
		p := Point{X: s.rng.IntN(s.Width), Y: s.rng.IntN(s.Height)}
		if !s.occupied(p) {
			s.Fruit = p
			return
		}
	}
}

func (s *State) occupied(p Point) bool {
	for _, q := range s.Snake {
		if q == p {
			return true
		}
	}
	return false
}
