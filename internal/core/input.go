// Package core provides the small shared vocabulary of the game: semantic
// input actions and runtime settings. It has no external dependencies so the
// engine and state machine stay pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
// Input adapters translate whatever they read (terminal keys, scripts) into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionRestart        // R
	ActionHack           // X - toggle high-value spawns
	ActionQuit           // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionRestart:
		return "restart"
	case ActionHack:
		return "hack"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsDirectional reports whether the action is one of the four moves.
func (a Action) IsDirectional() bool {
	return a >= ActionLeft && a <= ActionDown
}

// ParseAction converts a name (as produced by String) back into an Action.
// Single-letter shorthands L, R, U, D, N, X, Q are accepted as well.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "n", "":
		return ActionNone, nil
	case "left", "l":
		return ActionLeft, nil
	case "right", "r":
		return ActionRight, nil
	case "up", "u":
		return ActionUp, nil
	case "down", "d":
		return ActionDown, nil
	case "restart":
		return ActionRestart, nil
	case "hack", "x":
		return ActionHack, nil
	case "quit", "exit", "q":
		return ActionQuit, nil
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", s)
}

// ParseActions parses a comma or whitespace separated list of actions.
func ParseActions(s string) ([]Action, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	actions := make([]Action, 0, len(fields))
	for _, f := range fields {
		a, err := ParseAction(f)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
