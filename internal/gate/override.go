package gate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/sysinfo"
)

// ConfirmPhrase must be typed exactly, case-sensitive, to pass the final
// confirmation of the override ritual.
const ConfirmPhrase = "I accept the risk"

const (
	cooldown      = 5 * time.Second
	countdownSecs = 3
)

// Ritual walks a user through the mandatory confirmation sequence required to
// bypass an incompatible verdict. The sequence is a fixed ordered step table;
// no step may be skipped or reordered, and any decline aborts immediately.
type Ritual struct {
	In    io.Reader
	Out   io.Writer
	Sleep func(time.Duration) // nil = time.Sleep
}

// NewRitual returns a ritual bound to the given terminal streams.
func NewRitual(in io.Reader, out io.Writer) *Ritual {
	return &Ritual{In: in, Out: out}
}

// ritualState carries the inputs each step reads from.
type ritualState struct {
	entry   catalog.Entry
	profile sysinfo.Profile
	in      *bufio.Reader
}

// ritualStep is one confirmation in the sequence; run returns false to abort.
type ritualStep struct {
	name string
	run  func(r *Ritual, s *ritualState) bool
}

var ritualSteps = []ritualStep{
	{"shortfall", (*Ritual).showShortfall},
	{"acknowledge", (*Ritual).confirmUnderstood},
	{"cooldown", (*Ritual).waitCooldown},
	{"responsibility", (*Ritual).confirmResponsibility},
	{"phrase", (*Ritual).confirmPhrase},
	{"countdown", (*Ritual).finalCountdown},
}

// Request runs the full ritual for a blocked model. It returns true only if
// every step completes.
func (r *Ritual) Request(entry catalog.Entry, profile sysinfo.Profile) bool {
	s := &ritualState{entry: entry, profile: profile, in: bufio.NewReader(r.In)}
	for _, step := range ritualSteps {
		if !step.run(r, s) {
			fmt.Fprintln(r.Out, "  Override cancelled.")
			return false
		}
	}
	fmt.Fprintln(r.Out, "  Override granted.")
	return true
}

// showShortfall prints the exact RAM gap the user is about to ignore.
func (r *Ritual) showShortfall(s *ritualState) bool {
	fmt.Fprintf(r.Out, "\n  %s needs %d GB RAM; this system has %.1f GB.\n", s.entry.DisplayName, s.entry.MinRAMGB, s.profile.TotalRAMGB)
	fmt.Fprintf(r.Out, "  You are %.1f GB short.\n\n", Shortfall(s.entry, s.profile))
	return true
}

// confirmUnderstood is the first confirmation, default no.
func (r *Ritual) confirmUnderstood(s *ritualState) bool {
	fmt.Fprint(r.Out, "  Running this model can freeze or crash your system. Do you understand? [y/N] ")
	line, _ := readLine(s.in)
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

// waitCooldown is a mandatory visible wait before the next confirmation.
func (r *Ritual) waitCooldown(s *ritualState) bool {
	fmt.Fprintf(r.Out, "\n  Take a moment to reconsider (%ds)...\n", int(cooldown.Seconds()))
	r.sleep(cooldown)
	return true
}

// confirmResponsibility is a forced choice, default cancel.
func (r *Ritual) confirmResponsibility(s *ritualState) bool {
	fmt.Fprint(r.Out, "\n  Type 'accept' to accept responsibility, anything else cancels: ")
	choice, _ := readLine(s.in)
	return strings.TrimSpace(choice) == "accept"
}

// confirmPhrase requires the exact literal phrase, case-sensitive, no retry.
func (r *Ritual) confirmPhrase(s *ritualState) bool {
	fmt.Fprintf(r.Out, "\n  Type exactly %q to continue: ", ConfirmPhrase)
	phrase, _ := readLine(s.in)
	if phrase != ConfirmPhrase {
		fmt.Fprintln(r.Out, "  Phrase mismatch.")
		return false
	}
	return true
}

// finalCountdown gives a last visible chance to interrupt before granting.
func (r *Ritual) finalCountdown(s *ritualState) bool {
	fmt.Fprint(r.Out, "\n  Proceeding in ")
	for i := countdownSecs; i > 0; i-- {
		fmt.Fprintf(r.Out, "%d... ", i)
		r.sleep(time.Second)
	}
	fmt.Fprintln(r.Out)
	return true
}

func (r *Ritual) sleep(d time.Duration) {
	if r.Sleep != nil {
		r.Sleep(d)
		return
	}
	time.Sleep(d)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
