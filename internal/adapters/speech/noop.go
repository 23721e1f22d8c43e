package speech

import "context"

// Noop is a Speaker that stays silent. It stands in wherever speech is
// disabled so callers never branch on a nil speaker.
type Noop struct{}

// NewNoop returns a silent speaker.
func NewNoop() *Noop {
	return &Noop{}
}

// Say does nothing.
func (*Noop) Say(context.Context, string) error {
	return nil
}

// Laugh does nothing.
func (*Noop) Laugh(context.Context) error {
	return nil
}

// Available always reports false.
func (*Noop) Available() bool {
	return false
}

// Backend returns the empty string.
func (*Noop) Backend() string {
	return ""
}
