package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/platform"
)

var platformsJSON bool

func init() {
	platformsCmd.Flags().BoolVar(&platformsJSON, "json", false,
		"output as JSON")
	rootCmd.AddCommand(platformsCmd)
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Long: `List every supported platform, how it is checked and the profile URL
that is probed.

Probe platforms are checked with a direct HTTP request. Delegated
platforms are checked through the batch lookup.`,
	Example: `  namecheck platforms
  namecheck platforms --json

See Also: namecheck validate`,
	Args: cobra.NoArgs,
	RunE: runPlatforms,
}

type platformInfo struct {
	ID      platform.ID `json:"id"`
	Name    string      `json:"name"`
	Kind    string      `json:"kind"`
	Profile string      `json:"profile"`
	Rules   string      `json:"rules"`
}

func runPlatforms(cmd *cobra.Command, _ []string) error {
	infos := make([]platformInfo, 0, len(platform.All()))
	for _, id := range platform.All() {
		s := id.Spec()
		infos = append(infos, platformInfo{
			ID:      id,
			Name:    s.DisplayName,
			Kind:    s.Kind.String(),
			Profile: fmt.Sprintf(s.BaseURL+s.ProfilePath, "<handle>"),
			Rules:   s.Rules,
		})
	}

	out := cmd.OutOrStdout()
	if platformsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(infos), "encoding JSON")
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATFORM\tKIND\tPROFILE\tHANDLES")
	for _, i := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", i.ID, i.Kind, i.Profile, i.Rules)
	}
	return errors.Wrap(tw.Flush(), "writing table")
}
