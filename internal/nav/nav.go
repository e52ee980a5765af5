// Package nav is the screen state machine behind the interactive menu.
package nav

import "fmt"

// Screen identifies one interactive unit of the session.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenList
	ScreenInfo
	ScreenRun
	ScreenSetup
	ScreenRecommend
	ScreenChat
	ScreenKnowledgeBase
	ScreenExit
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenList:
		return "list"
	case ScreenInfo:
		return "info"
	case ScreenRun:
		return "run"
	case ScreenSetup:
		return "setup"
	case ScreenRecommend:
		return "recommend"
	case ScreenChat:
		return "chat"
	case ScreenKnowledgeBase:
		return "knowledge-base"
	case ScreenExit:
		return "exit"
	}
	return "unknown"
}

// TransitionKind says what the navigator should do after a screen completes.
type TransitionKind int

const (
	ReturnToMenu TransitionKind = iota
	AdvanceTo
	Exit
)

// Transition is the signal every screen yields on completion.
type Transition struct {
	Kind TransitionKind
	To   Screen // set when Kind == AdvanceTo
}

// ToMenu returns to the main menu.
func ToMenu() Transition { return Transition{Kind: ReturnToMenu} }

// Advance moves directly to another screen.
func Advance(s Screen) Transition { return Transition{Kind: AdvanceTo, To: s} }

// Quit terminates the session.
func Quit() Transition { return Transition{Kind: Exit} }

// Handler renders one screen and yields its transition.
type Handler func() Transition

// Navigator dispatches screens until one yields Exit. The menu screen is both
// the entry point and the default return target; it is itself a handler that
// advances to whichever screen the user picks.
type Navigator struct {
	handlers map[Screen]Handler
}

// New returns an empty navigator.
func New() *Navigator {
	return &Navigator{handlers: make(map[Screen]Handler)}
}

// Register binds a screen to its handler.
func (n *Navigator) Register(s Screen, h Handler) {
	n.handlers[s] = h
}

// Run loops from the given screen until a handler yields Exit. A transition
// to an unregistered screen is a programming defect and is reported as one.
func (n *Navigator) Run(start Screen) error {
	current := start
	for {
		h, ok := n.handlers[current]
		if !ok {
			return fmt.Errorf("no handler for screen %s", current)
		}
		t := h()
		switch t.Kind {
		case Exit:
			return nil
		case AdvanceTo:
			current = t.To
		default:
			current = ScreenMenu
		}
	}
}
