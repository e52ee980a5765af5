package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/meowyx/gaia-toolkit/internal/activity"
	"github.com/meowyx/gaia-toolkit/internal/chat"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/nav"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the model served by your node",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			trapInterrupt()

			t := chatLoop(cfg, bufio.NewReader(os.Stdin))
			if t.Kind == nav.Exit {
				return
			}

			// A /menu or /kb directive re-enters the navigator, exactly as
			// if the user had picked that entry from the menu.
			start := nav.ScreenMenu
			if t.Kind == nav.AdvanceTo {
				start = t.To
			}
			runInteractive(start)
		},
	}
}

// chatLoop reads user turns until a directive or EOF ends the session. The
// transcript lives only inside this loop.
func chatLoop(cfg *config.Config, in *bufio.Reader) nav.Transition {
	ui.Banner("chat")
	fmt.Printf("  Talking to %s (model %s)\n", cfg.Chat.Endpoint, cfg.Chat.Model)
	ui.Subtle.Println("  Directives: /menu returns to the menu, /kb opens knowledge bases, /exit quits")
	fmt.Println()

	client := chat.NewClient(cfg.Chat.Endpoint, cfg.Chat.Model, cfg.APIKey())
	transcript := chat.NewTranscript(cfg.Chat.SystemPrompt)
	start := time.Now()

	endSession := func(t nav.Transition) nav.Transition {
		if transcript.Turns() > 0 {
			_ = activity.LogChat(cfg.Chat.Model, transcript.Turns(), time.Since(start))
		}
		return t
	}

	for {
		fmt.Print("  you> ")
		line, err := in.ReadString('\n')
		if err != nil {
			return endSession(nav.Quit())
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if t, ok := chat.Directive(line); ok {
			return endSession(t)
		}

		transcript.AddUser(line)
		reply, err := client.Complete(transcript.Messages())
		if err != nil {
			// The user's turn stays in the transcript; only this reply is lost.
			ui.Bad.Printf("  chat request failed: %v\n", err)
			continue
		}
		transcript.AddAssistant(reply)
		fmt.Printf("\n  %s %s\n\n", ui.Brand.Sprint("node>"), reply)
	}
}
