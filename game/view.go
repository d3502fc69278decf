package game

import "github.com/zucenko/ludo/model"

// Board returns the static tables. Callers must not modify them.
func (c *Controller) Board() *model.Board {
	return c.model.Board
}

func (c *Controller) FieldColors() map[model.Field][]model.Coordinate {
	return c.model.Board.FieldColors
}

func (c *Controller) StartFields() map[model.Field][]model.Coordinate {
	return c.model.Board.StartFields
}

func (c *Controller) CurrentPlayer() model.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// PlayerAt returns whose token sits at the cell, if any.
func (c *Controller) PlayerAt(row, col int) (model.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model.PlayerAt(model.Coordinate{Row: row, Col: col})
}

func (c *Controller) DicePosition() model.Coordinate {
	return c.model.Board.Dice
}

func (c *Controller) DiceFace() model.Face {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model.Face
}

func (c *Controller) Snapshot() model.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}
