package game

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/ludo/model"
)

// lineBoard has one start cell per player and a shared straight path of n cells.
func lineBoard(n int) *model.Board {
	path := make([]model.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		path = append(path, model.Coordinate{Row: 0, Col: i})
	}
	return &model.Board{
		Size: 11,
		FieldColors: map[model.Field][]model.Coordinate{
			model.WhiteField: path,
		},
		StartFields: map[model.Field][]model.Coordinate{
			model.GreenField:  {{Row: 2, Col: 0}},
			model.RedField:    {{Row: 2, Col: 1}},
			model.BlueField:   {{Row: 2, Col: 2}},
			model.YellowField: {{Row: 2, Col: 3}},
		},
		Paths: map[model.Player][]model.Coordinate{
			model.Green:  path,
			model.Red:    path,
			model.Blue:   path,
			model.Yellow: path,
		},
		Dice: model.Coordinate{Row: 5, Col: 5},
	}
}

func rolls(values ...int) Roller {
	var mu sync.Mutex
	i := 0
	return RollerFunc(func() int {
		mu.Lock()
		defer mu.Unlock()
		v := values[i%len(values)]
		i++
		return v
	})
}

// placeGreen puts green's only token on path index i.
func placeGreen(t *testing.T, m *model.Model, i int) {
	start, ok := m.StartToken(model.Green)
	require.True(t, ok)
	require.True(t, m.MoveToken(model.Green, start, m.Board.Paths[model.Green][i]))
}

func greenIndex(c *Controller) int {
	s := c.Snapshot()
	return c.Board().PathIndex(model.Green, s.Tokens[model.Green][0].At)
}

func TestRotation(t *testing.T) {
	c := NewController(model.NewModel(model.Default()), Options{Clock: clock.NewMock(), Roller: rolls(1)})
	assert.Equal(t, model.Yellow, c.CurrentPlayer())

	want := []model.Player{model.Green, model.Red, model.Blue, model.Yellow, model.Green, model.Red}
	for i, p := range want {
		assert.Equal(t, Skipped, c.StepTurn())
		assert.Equal(t, p, c.CurrentPlayer())
		assert.Equal(t, i+1, c.Snapshot().Turn)
	}
}

func TestSixEntersOneToken(t *testing.T) {
	m := model.NewModel(model.Default())
	c := NewController(m, Options{Clock: clock.NewMock(), Roller: rolls(6)})

	assert.Equal(t, Entered, c.StepTurn())
	assert.Equal(t, model.Six, c.DiceFace())

	s := c.Snapshot()
	inStart := 0
	for _, tok := range s.Tokens[model.Green] {
		if c.Board().InStart(model.Green, tok.At) {
			inStart++
		}
	}
	assert.Equal(t, 3, inStart)
	first := c.Board().Paths[model.Green][0]
	p, ok := c.PlayerAt(first.Row, first.Col)
	assert.True(t, ok)
	assert.Equal(t, model.Green, p)
	assert.False(t, c.Walking())

	// other players are untouched
	assert.Equal(t, model.NewModel(model.Default()).Tokens[model.Red], s.Tokens[model.Red])
}

func TestSixWithEmptyStartWalks(t *testing.T) {
	m := model.NewModel(lineBoard(10))
	placeGreen(t, m, 2)
	c := NewController(m, Options{Clock: clock.NewMock(), Roller: rolls(6)})

	assert.Equal(t, Walking, c.StepTurn())
	for c.Step() {
	}
	assert.Equal(t, 8, greenIndex(c))
}

func TestWalk(t *testing.T) {
	tests := []struct {
		about string
		start int
		roll  int
		want  int
	}{
		{about: "plain", start: 3, roll: 4, want: 7},
		{about: "wraps past the end", start: 8, roll: 4, want: 2},
		{about: "single step", start: 0, roll: 1, want: 1},
		{about: "lands on last", start: 4, roll: 5, want: 9},
	}
	for _, test := range tests {
		t.Run(test.about, func(t *testing.T) {
			m := model.NewModel(lineBoard(10))
			placeGreen(t, m, test.start)
			c := NewController(m, Options{Clock: clock.NewMock(), Roller: rolls(test.roll)})

			require.Equal(t, Walking, c.StepTurn())
			steps := 0
			for {
				steps++
				more := c.Step()
				if !more {
					break
				}
				assert.Equal(t, (test.start+steps)%10, greenIndex(c))
			}
			assert.Equal(t, test.roll, steps)
			assert.Equal(t, test.want, greenIndex(c))
			assert.False(t, c.Walking())

			// nothing left to step
			assert.False(t, c.Step())
			assert.Equal(t, test.want, greenIndex(c))
		})
	}
}

func TestNothingOnPathSkips(t *testing.T) {
	m := model.NewModel(model.Default())
	before := m.CopyTokens()
	c := NewController(m, Options{Clock: clock.NewMock(), Roller: rolls(3)})

	assert.Equal(t, Skipped, c.StepTurn())
	assert.Equal(t, before, c.Snapshot().Tokens)
	assert.Equal(t, model.Face(3), c.DiceFace())
	assert.False(t, c.Walking())
}

func TestMissingTablesSkip(t *testing.T) {
	b := lineBoard(10)
	m := model.NewModel(b)
	placeGreen(t, m, 1)
	delete(b.Paths, model.Green)
	before := m.CopyTokens()
	c := NewController(m, Options{Clock: clock.NewMock(), Roller: rolls(6, 2)})

	assert.Equal(t, Skipped, c.StepTurn())
	assert.Equal(t, before, c.Snapshot().Tokens)

	delete(m.Tokens, model.Red)
	assert.Equal(t, Skipped, c.StepTurn())
	assert.Equal(t, model.Red, c.CurrentPlayer())
}

func TestStepTurnWhileWalking(t *testing.T) {
	m := model.NewModel(lineBoard(10))
	placeGreen(t, m, 0)
	c := NewController(m, Options{Clock: clock.NewMock(), Roller: rolls(3)})

	require.Equal(t, Walking, c.StepTurn())
	assert.Equal(t, Skipped, c.StepTurn())
	assert.Equal(t, model.Green, c.CurrentPlayer())
	assert.Equal(t, 1, c.Snapshot().Turn)
}

func TestInvalidRoll(t *testing.T) {
	m := model.NewModel(lineBoard(10))
	placeGreen(t, m, 0)
	c := NewController(m, Options{Clock: clock.NewMock(), Roller: rolls(7)})

	assert.Equal(t, Skipped, c.StepTurn())
	assert.Equal(t, model.One, c.DiceFace())
	assert.False(t, c.Walking())
}

func TestOnCommit(t *testing.T) {
	m := model.NewModel(lineBoard(10))
	placeGreen(t, m, 0)
	var got []model.Snapshot
	c := NewController(m, Options{
		Clock:    clock.NewMock(),
		Roller:   rolls(2),
		OnCommit: func(s model.Snapshot) { got = append(got, s) },
	})

	c.StepTurn()
	c.Step()
	c.Step()
	require.Len(t, got, 3)
	assert.True(t, got[0].Walking)
	assert.True(t, got[1].Walking)
	assert.False(t, got[2].Walking)
	assert.Equal(t, model.Coordinate{Row: 0, Col: 2}, got[2].Tokens[model.Green][0].At)
	assert.Equal(t, model.Face(2), got[2].Face)
}

func TestTokensStayOnStartOrPath(t *testing.T) {
	m := model.NewModel(model.Default())
	c := NewController(m, Options{Clock: clock.NewMock(), Roller: NewRandRoller(1)})
	b := c.Board()

	for i := 0; i < 400; i++ {
		c.StepTurn()
		for c.Step() {
		}
		s := c.Snapshot()
		for _, p := range model.Players {
			require.Len(t, s.Tokens[p], 4)
			for _, tok := range s.Tokens[p] {
				inStart := b.InStart(p, tok.At)
				onPath := b.PathIndex(p, tok.At) >= 0
				require.True(t, inStart != onPath, "turn %d %s token %d at %v", s.Turn, p.Name(), tok.Id, tok.At)
			}
		}
	}
}

func TestTimerDrivesTurns(t *testing.T) {
	mock := clock.NewMock()
	m := model.NewModel(lineBoard(10))
	placeGreen(t, m, 0)
	c := NewController(m, Options{Clock: mock, Roller: rolls(2)})

	c.Start()
	c.Start()
	assert.True(t, c.Running())

	// green walks two cells on the step cadence, the others skip
	require.Eventually(t, func() bool {
		mock.Add(250 * time.Millisecond)
		return greenIndex(c) >= 2 && c.Snapshot().Turn >= 2
	}, 5*time.Second, 5*time.Millisecond)

	c.Stop()
	c.Stop()
	assert.False(t, c.Running())

	frozen := c.Snapshot()
	mock.Add(10 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, c.Snapshot())
}

func TestStopMidWalkResumes(t *testing.T) {
	mock := clock.NewMock()
	m := model.NewModel(lineBoard(10))
	placeGreen(t, m, 0)
	c := NewController(m, Options{Clock: mock, Roller: rolls(5, 1)})

	c.Start()
	require.Eventually(t, func() bool {
		mock.Add(250 * time.Millisecond)
		return c.Walking() && greenIndex(c) >= 1
	}, 5*time.Second, 5*time.Millisecond)
	c.Stop()

	frozen := c.Snapshot()
	require.True(t, frozen.Walking)
	mock.Add(5 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, c.Snapshot())

	c.Start()
	require.Eventually(t, func() bool {
		mock.Add(250 * time.Millisecond)
		return !c.Walking() && greenIndex(c) >= 5
	}, 5*time.Second, 5*time.Millisecond)
	c.Stop()
}
