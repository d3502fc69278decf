package game

import (
	"fmt"
	"math/rand"
	"sync"
)

// Outcome is the result of one turn step. Every failure is Skipped.
type Outcome int

const (
	Skipped Outcome = iota
	Entered
	Walking
)

func (o Outcome) Name() string {
	switch o {
	case Skipped:
		return "SKIPPED"
	case Entered:
		return "ENTERED"
	case Walking:
		return "WALKING"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// Roller produces die rolls in [1,6].
type Roller interface {
	Roll() int
}

type randRoller struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandRoller(seed int64) Roller {
	return &randRoller{rnd: rand.New(rand.NewSource(seed))}
}

func (r *randRoller) Roll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(6) + 1
}

// RollerFunc adapts a function to Roller.
type RollerFunc func() int

func (f RollerFunc) Roll() int { return f() }
