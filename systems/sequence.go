package systems

import (
	"math"

	"github.com/automoto/caged/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const timeEpsilon = 1e-9

// Wait finishes once its time has elapsed.
type Wait struct {
	Remaining float64
}

func (w *Wait) Tick(dt float64) components.SequenceStatus {
	w.Remaining -= dt
	if w.Remaining <= timeEpsilon {
		return components.Done
	}
	return components.Continue
}

// Countdown runs for a whole number of seconds and reports each second as it
// is entered, starting with the full count on the first tick.
type Countdown struct {
	Remaining float64
	OnSecond  func(n int)
	shown     int
}

func NewCountdown(seconds float64, onSecond func(n int)) *Countdown {
	return &Countdown{Remaining: seconds, OnSecond: onSecond}
}

func (c *Countdown) Tick(dt float64) components.SequenceStatus {
	if c.Remaining <= timeEpsilon {
		return components.Done
	}
	if n := int(math.Ceil(c.Remaining - timeEpsilon)); n != c.shown {
		c.shown = n
		if c.OnSecond != nil {
			c.OnSecond(n)
		}
	}
	c.Remaining -= dt
	if c.Remaining <= timeEpsilon {
		return components.Done
	}
	return components.Continue
}

// Do runs a function once and finishes in the same tick.
type Do func()

func (d Do) Tick(float64) components.SequenceStatus {
	d()
	return components.Done
}

// Chain runs steps one after another. When a step finishes, the next one is
// started in the same tick with no time left, so instant steps run together.
type Chain struct {
	steps []components.Sequence
	index int
}

func NewChain(steps ...components.Sequence) *Chain {
	return &Chain{steps: steps}
}

func (c *Chain) Tick(dt float64) components.SequenceStatus {
	for c.index < len(c.steps) {
		if c.steps[c.index].Tick(dt) == components.Continue {
			return components.Continue
		}
		c.index++
		dt = 0
	}
	return components.Done
}

// Guarded stops its inner sequence as soon as Alive reports false. It is
// checked before every resumption.
type Guarded struct {
	Alive func() bool
	Inner components.Sequence
}

func (g *Guarded) Tick(dt float64) components.SequenceStatus {
	if !g.Alive() {
		return components.Done
	}
	return g.Inner.Tick(dt)
}

// Tween drives a value from begin to end over a duration.
type Tween struct {
	tween *gween.Tween
	Set   func(v float64)
}

func NewTween(begin, end, duration float64, set func(v float64)) *Tween {
	return &Tween{
		tween: gween.New(float32(begin), float32(end), float32(duration), ease.Linear),
		Set:   set,
	}
}

func (t *Tween) Tick(dt float64) components.SequenceStatus {
	v, done := t.tween.Update(float32(dt))
	t.Set(float64(v))
	if done {
		return components.Done
	}
	return components.Continue
}

// Repeat runs Action Count times, Interval seconds apart, starting on its
// first tick. An interval of zero runs every action in that first tick.
type Repeat struct {
	Count    int
	Interval float64
	Action   func()

	done  int
	timer float64
}

func (r *Repeat) Tick(dt float64) components.SequenceStatus {
	if r.done > 0 {
		r.timer -= dt
	}
	for r.done < r.Count && r.timer <= timeEpsilon {
		r.Action()
		r.done++
		r.timer += r.Interval
	}
	if r.done >= r.Count {
		return components.Done
	}
	return components.Continue
}
