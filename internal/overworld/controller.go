package overworld

import (
	"fmt"

	"github.com/vovakirdan/tui-overworld/internal/player"
)

// Controller turns key events into moves on a Session.
// Each recognized key produces exactly one move and one frame; repeated
// keys are not coalesced.
type Controller struct {
	session *Session
	keys    KeyMap
}

// NewController creates a controller for s using keys.
func NewController(s *Session, keys KeyMap) *Controller {
	return &Controller{session: s, keys: keys}
}

// Dispatch handles one key event. It reports whether the key was a
// movement key; any other key is ignored and nothing is redrawn.
func (c *Controller) Dispatch(msg fmt.Stringer) bool {
	dir := c.keys.Direction(msg)
	if dir == player.DirNone {
		return false
	}
	c.session.Move(dir)
	return true
}

// Keys returns the controller's bindings.
func (c *Controller) Keys() KeyMap {
	return c.keys
}

// Session returns the controlled session.
func (c *Controller) Session() *Session {
	return c.session
}
