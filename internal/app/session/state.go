package session

import (
	"context"

	"github.com/looplab/fsm"

	"navkit/internal/config/logger"
)

// FSM states
const (
	Idle     = "idle"
	Running  = "running"
	Finished = "finished"
	Exited   = "exited"
	Failed   = "failed"
)

// FSM events
const (
	Start  = "start"
	Finish = "finish"
	Exit   = "exit"
	Fail   = "fail"
)

// newSessionFSM creates the lifecycle state machine of a single script run
func newSessionFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Start, Src: []string{Idle}, Dst: Running},
			{Name: Finish, Src: []string{Running}, Dst: Finished},
			{Name: Exit, Src: []string{Running}, Dst: Exited},
			{Name: Fail, Src: []string{Running}, Dst: Failed},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("SESSION %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}

// isTerminal reports whether no further steps may run in state
func isTerminal(state string) bool {
	return state == Finished || state == Exited || state == Failed
}
