package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/namecheck/internal/check"
	"github.com/thoreinstein/namecheck/internal/cli/prompt"
	"github.com/thoreinstein/namecheck/internal/config"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/lookup"
	"github.com/thoreinstein/namecheck/internal/lookup/web"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/probe"
	"github.com/thoreinstein/namecheck/internal/report"
	"github.com/thoreinstein/namecheck/internal/scheduler"
)

var (
	platformFlag    []string
	pickFlag        bool
	noDelegatedFlag bool
	formatFlag      string
)

// newPrompter is replaced in tests.
var newPrompter = func(cmd *cobra.Command) *prompt.Prompter {
	return prompt.NewWithIO(cmd.InOrStdin(), cmd.ErrOrStderr())
}

func registerCheckFlags(c *cobra.Command) {
	c.Flags().StringSliceVarP(&platformFlag, "platform", "p", nil,
		"platform(s) to check: "+strings.Join(platform.Names(), ", ")+" (default: all)")
	c.Flags().BoolVar(&pickFlag, "pick", false,
		"choose platforms interactively")
	c.Flags().BoolVar(&noDelegatedFlag, "no-delegated", false,
		"skip the batch lookup (twitter, instagram, reddit)")
	c.Flags().StringVarP(&formatFlag, "format", "f", string(report.FormatText),
		"output format: text, json, yaml")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return errors.NewUserError(err, "")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	platforms, err := resolvePlatforms(cfg, platformFlag)
	if err != nil {
		return err
	}
	if noDelegatedFlag || !cfg.Delegated.Enabled {
		platforms = platform.OfKind(platforms, platform.KindProbe)
	}

	p := newPrompter(cmd)
	if pickFlag {
		platforms, err = p.PickPlatforms(platforms)
		if err != nil {
			return errors.NewUserError(err, "")
		}
	}
	if len(platforms) == 0 {
		return errors.NewUserError(errors.New("no platforms selected"), "Run: namecheck platforms")
	}

	raw := strings.Join(args, ",")
	if len(args) == 0 {
		raw, err = readHandles(ctx, p, platforms)
		switch {
		case errors.Is(err, check.ErrCancelled):
			return errors.NewExitError(err, errors.ExitInterrupted)
		case err != nil:
			return errors.NewUserError(err, "pass handles as arguments: namecheck alice,bob")
		}
	}

	usernames := check.ParseHandles(raw)
	if len(usernames) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no valid usernames entered.")
		return nil
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nchecking %d username(s): %s\n", len(usernames), strings.Join(usernames, ", "))
	}

	runner := newRunner(cfg, platforms, logger)
	if !quiet {
		runner.SetProgress(cmd.ErrOrStderr())
	}
	res, err := runner.Run(ctx, usernames)
	if err != nil {
		if errors.Is(err, check.ErrCancelled) {
			return errors.NewExitError(err, errors.ExitInterrupted)
		}
		return errors.NewSystemError(err, "")
	}

	out := cmd.OutOrStdout()
	return report.NewRenderer(out, format, format == report.FormatText && logging.SupportsColor(out)).Render(res)
}

// readHandles prompts for handles, giving up when ctx is cancelled.
func readHandles(ctx context.Context, p *prompt.Prompter, platforms []platform.ID) (string, error) {
	type result struct {
		raw string
		err error
	}
	done := make(chan result, 1)
	go func() {
		raw, err := p.ReadHandles(platforms)
		done <- result{raw, err}
	}()

	select {
	case r := <-done:
		return r.raw, r.err
	case <-ctx.Done():
		return "", check.ErrCancelled
	}
}

// newRunner wires the probe and delegated phases for platforms.
func newRunner(cfg *config.Config, platforms []platform.ID, logger *slog.Logger) *check.Runner {
	prober := probe.New(cfg.ProbeOptions(), logger)

	var adapter *lookup.Adapter
	if delegated := platform.OfKind(platforms, platform.KindDelegated); len(delegated) > 0 {
		adapter = lookup.NewAdapter(web.New(cfg.WebOptions(), logger), delegated, logger)
	}

	return check.NewRunner(
		scheduler.New(prober, logger),
		platform.OfKind(platforms, platform.KindProbe),
		adapter,
		logger,
	)
}
