// Package mathblitz generates tiered arithmetic problems. The tier
// (1..5) widens the operator set and operand ranges as a session
// progresses; the difficulty profile widens tier-1 addition ranges.
package mathblitz

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/nandinis/edudeck/internal/engine"
)

// Op is an arithmetic operator.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "×"
	OpDiv Op = "÷"
)

// Problem is one round of play.
type Problem struct {
	A      int
	B      int
	Op     Op
	Answer int
}

// Text renders the problem for display.
func (p Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op, p.B)
}

// Generator produces problems from an explicit randomness source so
// tests can seed it.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Next generates one problem for the given tier and difficulty.
// Invariants: subtraction answers are never negative, division is
// always exact with a nonzero divisor.
func (g *Generator) Next(tier int, d engine.Difficulty) Problem {
	if tier < 1 {
		tier = 1
	}
	if tier > engine.MaxTier {
		tier = engine.MaxTier
	}

	switch tier {
	case 1:
		return g.addition(tier1Range(d))
	case 2:
		return g.addOrSub(20)
	case 3:
		if g.rng.Float64() < 0.3 {
			return g.multiplication(12)
		}
		return g.addOrSub(25)
	case 4:
		r := g.rng.Float64()
		switch {
		case r < 0.2:
			return g.division(10, 10)
		case r < 0.4:
			return g.multiplication(12)
		default:
			return g.addOrSub(30)
		}
	default:
		// Mixed operations, larger numbers.
		switch Op([]Op{OpAdd, OpSub, OpMul, OpDiv}[g.rng.Intn(4)]) {
		case OpAdd:
			a := g.rng.Intn(50) + 1
			b := g.rng.Intn(50) + 1
			return Problem{A: a, B: b, Op: OpAdd, Answer: a + b}
		case OpSub:
			a := g.rng.Intn(50) + 25
			b := g.rng.Intn(25) + 1
			return Problem{A: a, B: b, Op: OpSub, Answer: a - b}
		case OpMul:
			return g.multiplication(15)
		default:
			return g.division(12, 15)
		}
	}
}

// tier1Range is the tier-1 addition operand ceiling per difficulty.
func tier1Range(d engine.Difficulty) int {
	switch d {
	case engine.Easy:
		return 10
	case engine.Hard:
		return 20
	default:
		return 15
	}
}

func (g *Generator) addition(ceil int) Problem {
	a := g.rng.Intn(ceil) + 1
	b := g.rng.Intn(ceil) + 1
	return Problem{A: a, B: b, Op: OpAdd, Answer: a + b}
}

// addOrSub picks addition or subtraction with equal probability.
// Subtraction operands are reordered larger-first so the answer is
// non-negative.
func (g *Generator) addOrSub(ceil int) Problem {
	a := g.rng.Intn(ceil) + 1
	b := g.rng.Intn(ceil) + 1
	if g.rng.Float64() < 0.5 {
		return Problem{A: a, B: b, Op: OpAdd, Answer: a + b}
	}
	hi, lo := max(a, b), min(a, b)
	return Problem{A: hi, B: lo, Op: OpSub, Answer: hi - lo}
}

func (g *Generator) multiplication(ceil int) Problem {
	a := g.rng.Intn(ceil) + 1
	b := g.rng.Intn(ceil) + 1
	return Problem{A: a, B: b, Op: OpMul, Answer: a * b}
}

// division builds an exact division: divisor and quotient are chosen
// first, the dividend derived, so the result is always an integer and
// the divisor is never zero.
func (g *Generator) division(divisorCeil, quotientCeil int) Problem {
	b := g.rng.Intn(divisorCeil) + 2
	answer := g.rng.Intn(quotientCeil) + 1
	return Problem{A: b * answer, B: b, Op: OpDiv, Answer: answer}
}

// Check parses the submitted answer and compares it to the expected
// result. Whitespace is ignored; non-numeric input is simply wrong.
func Check(p Problem, submitted string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(submitted))
	if err != nil {
		return false
	}
	return n == p.Answer
}
