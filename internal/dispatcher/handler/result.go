package handler

// Action tells the host what to do after an operation ran.
type Action uint8

const (
	// ActionContinue keeps the current mode.
	ActionContinue Action = iota
	// ActionSwitchMode asks the host to enter Result.Mode.
	ActionSwitchMode
	// ActionExit asks the host to end the session.
	ActionExit
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionSwitchMode:
		return "switch-mode"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ResultStatus indicates whether an operation had any effect.
type ResultStatus uint8

const (
	// StatusOK indicates the operation changed text or selection.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the operation had nothing to do.
	StatusNoOp
	// StatusError is recorded by the dispatcher for failed operations.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of an operation.
type Result struct {
	// Action is what the host should do next.
	Action Action

	// Mode is the target mode for ActionSwitchMode.
	Mode string

	// Status indicates whether anything changed.
	Status ResultStatus

	// Message is an optional status message for display.
	Message string
}

// Continue creates a successful result that keeps the current mode.
func Continue() Result {
	return Result{Action: ActionContinue, Status: StatusOK}
}

// NoOp creates a result for an operation that had nothing to do.
func NoOp() Result {
	return Result{Action: ActionContinue, Status: StatusNoOp}
}

// SwitchMode creates a result asking the host to enter mode.
func SwitchMode(mode string) Result {
	return Result{Action: ActionSwitchMode, Mode: mode, Status: StatusOK}
}

// Exit creates a result asking the host to end the session.
func Exit() Result {
	return Result{Action: ActionExit, Status: StatusOK}
}

// Failure creates the result recorded for a failed operation. The mode is
// left unchanged.
func Failure(err error) Result {
	r := Result{Action: ActionContinue, Status: StatusError}
	if err != nil {
		r.Message = err.Error()
	}
	return r
}

// IsOK returns true if the operation had an effect.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsExit returns true if the host should stop.
func (r Result) IsExit() bool {
	return r.Action == ActionExit
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// String formats the result for logs.
func (r Result) String() string {
	if r.Action == ActionSwitchMode {
		return r.Action.String() + "(" + r.Mode + ")"
	}
	if r.Action == ActionContinue && r.Status != StatusOK {
		return r.Status.String()
	}
	return r.Action.String()
}
