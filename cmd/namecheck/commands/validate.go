package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/namecheck/internal/check"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/validator"
)

var (
	validatePlatforms []string
	validateJSON      bool
)

// errHandlesRejected is a sentinel for a non-zero exit after the report.
var errHandlesRejected = errors.New("one or more handles rejected")

func init() {
	validateCmd.Flags().StringSliceVarP(&validatePlatforms, "platform", "p", nil,
		"platform(s) to validate against (default: all probe platforms)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <handle>...",
	Short: "Check handle syntax without network access",
	Long: `Validate handles against each platform's syntax rules and explain every
rule they break. No request is made.

Delegated platforms apply their rules remotely and are not validated.

Exit codes:
  0 - every handle is valid on every platform
  1 - at least one handle was rejected`,
	Example: `  namecheck validate alice -bad-
  namecheck validate -p telegram,snapchat my_handle

See Also: namecheck platforms`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ids := platform.Probed()
	if len(validatePlatforms) > 0 {
		parsed, err := platform.ParseAll(validatePlatforms)
		if err != nil {
			return errors.NewUserError(err, "Run: namecheck platforms")
		}
		platform.Sort(parsed)
		ids = platform.OfKind(parsed, platform.KindProbe)
	}

	var results []*validator.Result
	for _, raw := range args {
		for _, h := range check.ParseHandles(raw) {
			for _, id := range ids {
				results = append(results, platform.Check(id, h))
			}
		}
	}

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	out := cmd.OutOrStdout()
	useColor := format == validator.FormatText && logging.SupportsColor(out)
	if err := validator.NewReporter(out, format, useColor).Report(results...); err != nil {
		return err
	}

	if validator.Rejected(results) > 0 {
		return errors.NewExitError(errHandlesRejected, errors.ExitUser)
	}
	return nil
}
