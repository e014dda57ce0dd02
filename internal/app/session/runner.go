//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=session
package session

import (
	"context"
	"fmt"

	"navkit/internal/app/errors"
	"navkit/internal/app/navigation"
	"navkit/internal/config/logger"
)

// Snapshot is the navigator state observed after a step
type Snapshot struct {
	Step         int
	Description  string
	OK           bool
	Err          error
	Home         string
	Content      []string
	Current      string
	CurrentIndex int
}

// Result summarizes a script run
type Result struct {
	State     string
	Snapshots []Snapshot
}

// Reporter receives a snapshot after every executed step
type Reporter interface {
	Report(snapshot Snapshot)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(snapshot Snapshot)

func (f ReporterFunc) Report(snapshot Snapshot) {
	f(snapshot)
}

// Runner applies scripts to a navigator
type Runner interface {
	Run(ctx context.Context, script *Script, reporter Reporter) (*Result, error)
}

type runner struct {
	nav navigation.Navigable
	log logger.Logger
}

// NewRunner creates a runner driving nav
func NewRunner(nav navigation.Navigable, log logger.Logger) Runner {
	return &runner{
		nav: nav,
		log: log.WithComponent("session"),
	}
}

// Run executes the script steps in order until the script ends, an exit step runs,
// a step fails without continue_on_error, or ctx is cancelled
func (r *runner) Run(ctx context.Context, script *Script, reporter Reporter) (*Result, error) {
	machine := newSessionFSM(r.log)
	if err := machine.Event(ctx, Start); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSessionStart, err)
	}

	result := &Result{Snapshots: make([]Snapshot, 0, len(script.Steps))}

	var runErr error

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		ok, err := r.apply(step)

		snapshot := r.snapshot(i+1, step, ok, err)
		result.Snapshots = append(result.Snapshots, snapshot)

		if reporter != nil {
			reporter.Report(snapshot)
		}

		if err != nil {
			r.log.Warn().Err(err).Msgf("Step %d (%s) failed", i+1, step)

			if !script.ContinueOnError {
				runErr = fmt.Errorf("%w: step %d (%s): %w", errors.ErrStepFailed, i+1, step, err)
				break
			}
		}

		if step.Op == OpExit {
			_ = machine.Event(ctx, Exit)
			break
		}
	}

	if !isTerminal(machine.Current()) {
		event := Finish
		if runErr != nil {
			event = Fail
		}

		_ = machine.Event(context.Background(), event)
	}

	result.State = machine.Current()

	return result, runErr
}

// apply executes a single step. The boolean is the navigator's success flag for
// operations that report one, and true otherwise.
func (r *runner) apply(step Step) (bool, error) {
	switch step.Op {
	case OpNav:
		node, err := resolve(r.nav, step)
		if err != nil {
			return false, err
		}

		return r.nav.Nav(node), nil
	case OpNavIndex:
		return r.nav.NavIndex(*step.Index)
	case OpHome:
		return r.nav.NavHome(), nil
	case OpNext:
		return true, r.nav.NavNext()
	case OpPrev:
		return true, r.nav.NavPrev()
	case OpAdd, OpInsert:
		node, err := r.stepNode(step)
		if err != nil {
			return false, err
		}

		if step.Index != nil {
			r.nav.InsertContent(*step.Index, node)
		} else {
			r.nav.AddContent(node)
		}

		return true, nil
	case OpRemove:
		node, err := resolve(r.nav, step)
		if err != nil {
			return false, err
		}

		return r.nav.RemoveContent(node), nil
	case OpRemoveIndex:
		return true, r.nav.RemoveContentAt(*step.Index)
	case OpClear:
		r.nav.RemoveAllContent()
		return true, nil
	case OpSetHome:
		node, err := r.stepNode(step)
		if err != nil {
			return false, err
		}

		r.nav.SetHome(node)

		return true, nil
	case OpExit:
		return true, r.nav.Exit()
	default:
		return false, fmt.Errorf("%w: '%s'", errors.ErrUnknownOperation, step.Op)
	}
}

// stepNode reuses an existing node when the step selects one, otherwise creates a new node
func (r *runner) stepNode(step Step) (navigation.Node, error) {
	if step.Target == "" && step.Match == "" {
		return navigation.NewNode(step.Title, step.Icon), nil
	}

	return resolve(r.nav, step)
}

func (r *runner) snapshot(index int, step Step, ok bool, err error) Snapshot {
	content := r.nav.Content()
	titles := make([]string, 0, len(content))

	for _, node := range content {
		titles = append(titles, titleOf(node))
	}

	return Snapshot{
		Step:         index,
		Description:  step.String(),
		OK:           ok && err == nil,
		Err:          err,
		Home:         titleOf(r.nav.Home()),
		Content:      titles,
		Current:      titleOf(r.nav.CurrentNode()),
		CurrentIndex: r.nav.CurrentNodeIndex(),
	}
}

func titleOf(node navigation.Node) string {
	if node == nil {
		return ""
	}

	return node.Title()
}
