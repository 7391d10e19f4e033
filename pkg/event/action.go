package event

type Action int

const (
	ActionUnknown Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionPause
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
