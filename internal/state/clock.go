package state

import (
	"github.com/google/uuid"
)

// SessionID tags log lines from this run.
var SessionID = uuid.NewString()

// clock counts changes to what a frame would show. It replaces a dirty flag:
// a renderer keeps the last revision it drew and redraws when it differs.
type clock struct {
	rev uint64
}

func (c *clock) tick() uint64 {
	c.rev++
	return c.rev
}

func newStrokeID() string {
	return uuid.NewString()
}
