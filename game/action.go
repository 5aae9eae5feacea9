package game

// Action is a player command applied to the falling piece.
type Action int

const (
	ActionDown Action = iota
	ActionLeft
	ActionRight
	ActionRotate
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRotate:
		return "rotate"
	}
	return "unknown"
}

// Keys maps the input characters to actions. Any other key is ignored.
var Keys = map[rune]Action{
	's': ActionDown,
	'a': ActionLeft,
	'd': ActionRight,
	'w': ActionRotate,
}

func ActionForKey(key rune) (Action, bool) {
	a, ok := Keys[key]
	return a, ok
}
