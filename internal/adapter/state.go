package adapter

import "fmt"

type StateKind uint8

const (
	StateSyncing StateKind = iota
	StateSynced
	StateNotSynced
)

func (k StateKind) String() string {
	switch k {
	case StateSyncing:
		return "syncing"
	case StateSynced:
		return "synced"
	case StateNotSynced:
		return "not_synced"
	}

	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// State is the sync state of an adapter. Progress is only meaningful while syncing and lies in [0, 1].
type State struct {
	Kind     StateKind `json:"kind"`
	Progress float64   `json:"progress"`
}

func Syncing(progress float64) State {
	return State{Kind: StateSyncing, Progress: clampProgress(progress)}
}

func Synced() State {
	return State{Kind: StateSynced}
}

func NotSynced() State {
	return State{Kind: StateNotSynced}
}

func (s State) String() string {
	if s.Kind == StateSyncing {
		return fmt.Sprintf("%s(%.4f)", s.Kind, s.Progress)
	}

	return s.Kind.String()
}

func clampProgress(p float64) float64 {
	switch {
	case p < 0 || p != p:
		return 0
	case p > 1:
		return 1
	}

	return p
}

// Transition is the outcome of applying a kit state report to the current state.
type Transition struct {
	Next State
	// StateChanged is set when the state variant changed.
	StateChanged bool
	// Progress is set for every syncing report, including repeated ones.
	Progress *float64
}

// Apply computes the next adapter state for a kit state reported by the chain client.
func Apply(current State, reported State) Transition {
	switch reported.Kind {
	case StateSynced, StateNotSynced:
		if current.Kind == reported.Kind {
			return Transition{Next: current}
		}
		return Transition{Next: State{Kind: reported.Kind}, StateChanged: true}
	default:
		next := Syncing(reported.Progress)
		progress := next.Progress
		return Transition{
			Next:         next,
			StateChanged: current.Kind != StateSyncing,
			Progress:     &progress,
		}
	}
}
