package nav

import (
	"testing"
)

func TestRunDispatchesUntilExit(t *testing.T) {
	var visited []Screen

	n := New()
	n.Register(ScreenMenu, func() Transition {
		visited = append(visited, ScreenMenu)
		if len(visited) > 1 {
			return Quit()
		}
		return Advance(ScreenList)
	})
	n.Register(ScreenList, func() Transition {
		visited = append(visited, ScreenList)
		return ToMenu()
	})

	if err := n.Run(ScreenMenu); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []Screen{ScreenMenu, ScreenList, ScreenMenu}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, visited[i], want[i])
		}
	}
}

func TestChatDirectiveMatchesMenuNavigation(t *testing.T) {
	// A /kb directive inside chat resolves to the same transition as picking
	// the knowledge base entry from the menu.
	var visited []Screen
	record := func(s Screen, t Transition) Handler {
		return func() Transition {
			visited = append(visited, s)
			return t
		}
	}

	n := New()
	n.Register(ScreenMenu, record(ScreenMenu, Advance(ScreenChat)))
	n.Register(ScreenChat, record(ScreenChat, Advance(ScreenKnowledgeBase)))
	n.Register(ScreenKnowledgeBase, record(ScreenKnowledgeBase, Quit()))

	if err := n.Run(ScreenMenu); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(visited) != 3 || visited[2] != ScreenKnowledgeBase {
		t.Errorf("expected chat to advance into knowledge base, visited %v", visited)
	}
}

func TestRunDefaultsToMenu(t *testing.T) {
	count := 0
	n := New()
	n.Register(ScreenMenu, func() Transition {
		count++
		return Quit()
	})
	n.Register(ScreenInfo, func() Transition { return ToMenu() })

	// A standalone screen returning to menu lands on the menu handler.
	if err := n.Run(ScreenInfo); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if count != 1 {
		t.Errorf("menu handler ran %d times, want 1", count)
	}
}

func TestRunUnregisteredScreen(t *testing.T) {
	n := New()
	if err := n.Run(ScreenRun); err == nil {
		t.Fatal("expected an error for an unregistered screen")
	}
}

func TestScreenNames(t *testing.T) {
	tests := []struct {
		s    Screen
		want string
	}{
		{ScreenMenu, "menu"},
		{ScreenKnowledgeBase, "knowledge-base"},
		{ScreenExit, "exit"},
		{Screen(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Screen(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
