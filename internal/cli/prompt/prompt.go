// Package prompt provides the interactive input of namecheck.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/platform"
)

// Sentinel errors for interactive input.
var (
	ErrNoInput            = errors.New("no input received")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// HandlesPrompt is shown when asking for handles.
const HandlesPrompt = "enter usernames (comma-separated): "

const banner = `
┌───────────────────────────────────────┐
│          namecheck: handles           │
└───────────────────────────────────────┘
`

// multiFinder returns the indexes of the chosen items.
type multiFinder func(items []platform.ID) ([]int, error)

// Prompter handles interactive prompts.
type Prompter struct {
	reader io.Reader
	writer io.Writer
	find   multiFinder
}

// New creates a Prompter using stdin and stdout.
func New() *Prompter {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a Prompter with custom reader and writer for testing.
func NewWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: r, writer: w, find: fuzzyFind}
}

// ReadHandles prints the banner and the list of checked platforms, then
// reads one line of comma-separated handles.
//
// Returns ErrNoInput if input ends (e.g., Ctrl+D) before a line is read.
func (p *Prompter) ReadHandles(platforms []platform.ID) (string, error) {
	fmt.Fprint(p.writer, banner)
	names := make([]string, len(platforms))
	for i, id := range platforms {
		names[i] = id.String()
	}
	fmt.Fprintf(p.writer, "checks: %s\n", strings.Join(names, ", "))
	fmt.Fprint(p.writer, HandlesPrompt)

	line, err := bufio.NewReader(p.reader).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) != "" {
				return line, nil
			}
			return "", ErrNoInput
		}
		return "", errors.Wrap(err, "reading handles")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PickPlatforms lets the user choose a subset of platforms.
//
// Returns ErrSelectionCancelled if the finder is aborted or nothing is picked.
func (p *Prompter) PickPlatforms(platforms []platform.ID) ([]platform.ID, error) {
	if len(platforms) == 0 {
		return nil, nil
	}
	idxs, err := p.find(platforms)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "platform picker failed")
	}
	if len(idxs) == 0 {
		return nil, ErrSelectionCancelled
	}

	picked := make([]platform.ID, 0, len(idxs))
	for _, i := range idxs {
		picked = append(picked, platforms[i])
	}
	platform.Sort(picked)
	return picked, nil
}

func fuzzyFind(items []platform.ID) ([]int, error) {
	return fuzzyfinder.FindMulti(
		items,
		func(i int) string { return items[i].String() },
		fuzzyfinder.WithHeader("tab to select, enter to confirm"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			s := items[i].Spec()
			return fmt.Sprintf("Platform: %s\nKind: %s\nProfile: %s\n\nHandles:\n%s",
				s.DisplayName,
				s.Kind,
				platform.ProfileURL(s.ID, "", "<handle>"),
				s.Rules,
			)
		}),
	)
}
