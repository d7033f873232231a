package models

// State is the current step of one publication run.
type State string

// Publication run states. Failures in any state at or after StateInventorying
// pass through StateCompensating before reaching StateFailed.
const (
	StateStart        State = "start"
	StateValidating   State = "validating"
	StateCreating     State = "creating"
	StateInventorying State = "inventorying"
	StateImaging      State = "imaging"
	StateTranslating  State = "translating"
	StatePublishing   State = "publishing"
	StateCompensating State = "compensating"
	StateDone         State = "done"
	StateFailed       State = "failed"
)
