package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/nav"
	"github.com/meowyx/gaia-toolkit/internal/sysinfo"
	"github.com/meowyx/gaia-toolkit/internal/ui"
)

// session carries the per-invocation state every screen reads: the resolved
// catalog, the measured host profile, and the shared input reader.
type session struct {
	cfg     *config.Config
	entries []catalog.Entry
	profile sysinfo.Profile
	in      *bufio.Reader
}

// runInteractive enters the navigator loop at the given screen. It is used
// both by the bare `gaiat` invocation (starting at the menu) and by
// standalone screens that chose to re-enter the loop.
func runInteractive(start nav.Screen) {
	trapInterrupt()

	s := &session{
		cfg: config.Load(),
		in:  bufio.NewReader(os.Stdin),
	}
	s.entries = loadCatalog(s.cfg)
	s.profile = sysinfo.Detect()

	n := nav.New()
	n.Register(nav.ScreenMenu, s.menuScreen)
	n.Register(nav.ScreenList, s.listScreen)
	n.Register(nav.ScreenInfo, s.infoScreen)
	n.Register(nav.ScreenRun, s.runScreen)
	n.Register(nav.ScreenSetup, s.setupScreen)
	n.Register(nav.ScreenRecommend, s.recommendScreen)
	n.Register(nav.ScreenChat, s.chatScreen)
	n.Register(nav.ScreenKnowledgeBase, s.kbScreen)

	if err := n.Run(start); err != nil {
		ui.Bad.Printf("gaiat: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\n  Goodbye! Your node thanks you.")
}

// trapInterrupt makes Ctrl-C at any prompt say goodbye and leave. Nothing is
// persisted across invocations, so there is no state to roll back.
func trapInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		fmt.Println("\n\n  Interrupted. Goodbye!")
		os.Exit(0)
	}()
}

var menuItems = []struct {
	label  string
	screen nav.Screen
}{
	{"Browse the model catalog", nav.ScreenList},
	{"Model details", nav.ScreenInfo},
	{"Deploy a model", nav.ScreenRun},
	{"Guided setup", nav.ScreenSetup},
	{"Recommend a model for me", nav.ScreenRecommend},
	{"Chat with your node", nav.ScreenChat},
	{"Knowledge bases", nav.ScreenKnowledgeBase},
}

func (s *session) menuScreen() nav.Transition {
	ui.Banner("interactive menu")
	fmt.Printf("  System: %s\n\n", s.profile)
	for i, item := range menuItems {
		fmt.Printf("  %d. %s\n", i+1, item.label)
	}
	fmt.Println("  q. Quit")

	for {
		fmt.Printf("\n  Pick an option (1-%d or q): ", len(menuItems))
		line, err := s.readLine()
		if err != nil {
			return nav.Quit()
		}
		if strings.EqualFold(line, "q") {
			return nav.Quit()
		}
		if i, err := strconv.Atoi(line); err == nil && i >= 1 && i <= len(menuItems) {
			return nav.Advance(menuItems[i-1].screen)
		}
		ui.Warn.Println("  Invalid choice.")
	}
}

func (s *session) listScreen() nav.Transition {
	ui.Banner("model catalog")
	printListTable(s.entries)
	s.pause()
	return nav.ToMenu()
}

func (s *session) infoScreen() nav.Transition {
	entry := s.pickModel("Which model?")
	if entry == nil {
		return nav.ToMenu()
	}
	fmt.Println()
	printModelInfo(*entry, s.profile)
	s.pause()
	return nav.ToMenu()
}

func (s *session) runScreen() nav.Transition {
	entry := s.pickModel("Which model do you want to deploy?")
	if entry == nil {
		return nav.ToMenu()
	}

	// The menu path asks before starting the override ritual; the ritual
	// itself stays mandatory for blocked models.
	force := false
	if checkBlocked(*entry, s.profile) {
		ui.Warn.Printf("\n  %s This model is blocked on your hardware.\n", ui.WarnIcon())
		force = s.confirm("Request an override anyway?")
		if !force {
			return nav.ToMenu()
		}
	}

	if err := deploy(s.cfg, *entry, s.profile, false, force, s.in, os.Stdout); err != nil {
		ui.Bad.Printf("gaiat: %v\n", err)
	}
	s.pause()
	return nav.ToMenu()
}

func (s *session) setupScreen() nav.Transition {
	runSetup(s.cfg, s.entries, s.profile, s.in)
	s.pause()
	return nav.ToMenu()
}

func (s *session) recommendScreen() nav.Transition {
	runRecommend(s.entries, s.profile, s.in)
	s.pause()
	return nav.ToMenu()
}

func (s *session) chatScreen() nav.Transition {
	return chatLoop(s.cfg, s.in)
}

func (s *session) kbScreen() nav.Transition {
	runKnowledgeBases(s.cfg, s.in)
	s.pause()
	return nav.ToMenu()
}

// pickModel prompts for a model identifier and resolves it in the catalog.
// Returns nil when the user enters nothing or the model is unknown.
func (s *session) pickModel(prompt string) *catalog.Entry {
	fmt.Printf("\n  %s (model id, empty to go back): ", prompt)
	line, err := s.readLine()
	if err != nil || line == "" {
		return nil
	}
	entry := catalog.Find(s.entries, line)
	if entry == nil {
		ui.Warn.Printf("  Unknown model %q — pick one from the list screen.\n", line)
	}
	return entry
}

func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *session) confirm(prompt string) bool {
	fmt.Printf("  %s [y/N] ", prompt)
	line, err := s.readLine()
	if err != nil {
		return false
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes"
}

func (s *session) pause() {
	fmt.Print("\n  Press enter to return to the menu...")
	_, _ = s.in.ReadString('\n')
}

// promptReturnToMenu is used by standalone screens that may re-enter the
// navigator loop instead of terminating.
func promptReturnToMenu(in *bufio.Reader) bool {
	fmt.Print("\n  Return to the menu? [y/N] ")
	line, err := in.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
