package generator

// State is a step of a generation run.
type State int

const (
	Start State = iota
	NameResolved
	ControllerDecision
	ModelDecision
	RepositoryDecision
	Done
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case NameResolved:
		return "NameResolved"
	case ControllerDecision:
		return "ControllerDecision"
	case ModelDecision:
		return "ModelDecision"
	case RepositoryDecision:
		return "RepositoryDecision"
	case Done:
		return "Done"
	}
	return "Unknown"
}
