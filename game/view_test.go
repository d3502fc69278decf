package game

import (
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/zucenko/ludo/model"
)

func TestQuerySurface(t *testing.T) {
	board := model.Default()
	c := NewController(model.NewModel(board), Options{Clock: clock.NewMock(), Roller: rolls(6)})

	assert.Equal(t, board.FieldColors, c.FieldColors())
	assert.Equal(t, board.StartFields, c.StartFields())
	assert.Equal(t, model.Coordinate{Row: 5, Col: 5}, c.DicePosition())
	assert.Equal(t, model.One, c.DiceFace())

	p, ok := c.PlayerAt(10, 10)
	assert.True(t, ok)
	assert.Equal(t, model.Blue, p)
	_, ok = c.PlayerAt(5, 5)
	assert.False(t, ok)

	c.StepTurn()
	p, ok = c.PlayerAt(4, 0)
	assert.True(t, ok)
	assert.Equal(t, model.Green, p)

	s := c.Snapshot()
	assert.Equal(t, 1, s.Turn)
	assert.Equal(t, model.Green, s.Current)
	assert.Equal(t, model.Six, s.Face)
	assert.Equal(t, board.Dice, s.Dice)
}

func TestDefaults(t *testing.T) {
	c := NewController(model.NewModel(model.Default()), Options{})
	assert.Equal(t, DefaultTurnInterval, c.opts.TurnInterval)
	assert.Equal(t, DefaultStepInterval, c.opts.StepInterval)
	assert.NotNil(t, c.opts.Clock)

	for i := 0; i < 100; i++ {
		v := c.opts.Roller.Roll()
		assert.True(t, v >= 1 && v <= 6, "roll %d", v)
	}
	assert.Equal(t, "WALKING", Walking.Name())
	assert.Equal(t, "N/A(9)", Outcome(9).Name())
}
