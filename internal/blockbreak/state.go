package blockbreak

import "github.com/vovakirdan/blockbreak/internal/core"

// State is the game's phase.
type State int

const (
	StateWaiting       State = iota // ball on paddle, waiting for launch
	StatePlaying                    // ball in play
	StatePaused                     // simulation frozen
	StateGameOver                   // no lives left
	StateLevelComplete              // grid cleared, waiting to advance
	StateGameComplete               // last level cleared
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateLevelComplete:
		return "levelcomplete"
	case StateGameComplete:
		return "gamecomplete"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateGameComplete
}

// AcceptsMovement reports whether paddle input is honoured in this state.
func (s State) AcceptsMovement() bool {
	return s == StateWaiting || s == StatePlaying
}

// outcome is the side effect a transition asks the game to perform.
type outcome int

const (
	outcomeNone    outcome = iota // no transition
	outcomeLaunch                 // serve the ball
	outcomePause                  // freeze
	outcomeResume                 // unfreeze
	outcomeAdvance                // next level or campaign end
	outcomeNewGame                // fresh session
)

// transition maps an input action to its effect in the given state.
// Pairs not listed are no-ops. Tick-driven transitions live in Game.Tick.
func transition(s State, a core.Action) outcome {
	switch s {
	case StateWaiting:
		if a == core.ActionLaunch {
			return outcomeLaunch
		}
	case StatePlaying:
		if a == core.ActionLaunch || a == core.ActionPause {
			return outcomePause
		}
	case StatePaused:
		if a == core.ActionLaunch || a == core.ActionPause {
			return outcomeResume
		}
	case StateLevelComplete:
		if a == core.ActionLaunch {
			return outcomeAdvance
		}
	case StateGameOver, StateGameComplete:
		if a == core.ActionRestart {
			return outcomeNewGame
		}
	}
	return outcomeNone
}
