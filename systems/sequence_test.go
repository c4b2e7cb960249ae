package systems

import (
	"testing"

	"github.com/automoto/caged/components"
	"github.com/stretchr/testify/assert"
)

const tick = 1.0 / 60.0

func runFor(seq components.Sequence, seconds float64) components.SequenceStatus {
	status := components.Continue
	for i := 0; i < int(seconds/tick+0.5); i++ {
		status = seq.Tick(tick)
		if status == components.Done {
			return status
		}
	}
	return status
}

func TestCountdownReportsEachSecond(t *testing.T) {
	var seen []int
	c := NewCountdown(3, func(n int) { seen = append(seen, n) })

	assert.Equal(t, components.Continue, runFor(c, 2.9))
	assert.Equal(t, components.Done, runFor(c, 0.2))
	assert.Equal(t, []int{3, 2, 1}, seen)
}

func TestChainRunsInstantStepsTogether(t *testing.T) {
	var order []string
	c := NewChain(
		Do(func() { order = append(order, "a") }),
		&Wait{Remaining: 0.5},
		Do(func() { order = append(order, "b") }),
		Do(func() { order = append(order, "c") }),
	)

	assert.Equal(t, components.Continue, c.Tick(tick))
	assert.Equal(t, []string{"a"}, order)

	assert.Equal(t, components.Done, runFor(c, 1))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestGuardedStopsWhenNotAlive(t *testing.T) {
	alive := true
	ran := 0
	g := &Guarded{
		Alive: func() bool { return alive },
		Inner: NewChain(&Wait{Remaining: 1}, Do(func() { ran++ })),
	}

	assert.Equal(t, components.Continue, g.Tick(tick))
	alive = false
	assert.Equal(t, components.Done, g.Tick(2))
	assert.Zero(t, ran)
}

func TestTweenReachesEnd(t *testing.T) {
	var v float64
	tw := NewTween(0, 1, 0.5, func(x float64) { v = x })

	assert.Equal(t, components.Continue, tw.Tick(0.25))
	assert.InDelta(t, 0.5, v, 0.01)
	assert.Equal(t, components.Done, runFor(tw, 1))
	assert.InDelta(t, 1, v, 0.001)
}

func TestRepeatSpacesActions(t *testing.T) {
	n := 0
	r := &Repeat{Count: 3, Interval: 0.5, Action: func() { n++ }}

	assert.Equal(t, components.Continue, r.Tick(tick))
	assert.Equal(t, 1, n)
	assert.Equal(t, components.Continue, runFor(r, 0.45))
	assert.Equal(t, 1, n)
	assert.Equal(t, components.Continue, runFor(r, 0.1))
	assert.Equal(t, 2, n)
	assert.Equal(t, components.Done, runFor(r, 1))
	assert.Equal(t, 3, n)
}

func TestRepeatWithoutIntervalRunsAtOnce(t *testing.T) {
	n := 0
	r := &Repeat{Count: 4, Action: func() { n++ }}

	assert.Equal(t, components.Done, r.Tick(tick))
	assert.Equal(t, 4, n)
}
