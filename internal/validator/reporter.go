package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/namecheck/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Reporter writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
	ok     *color.Color
	bad    *color.Color
	dim    *color.Color
}

// NewReporter creates a Reporter. Colors apply to text output only and
// only when useColor is set.
func NewReporter(out io.Writer, format Format, useColor bool) *Reporter {
	r := &Reporter{
		out:    out,
		format: format,
		ok:     color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
		dim:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{r.ok, r.bad, r.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Report writes results in the reporter's format.
func (r *Reporter) Report(results ...*Result) error {
	if r.format == FormatJSON {
		if results == nil {
			results = []*Result{}
		}
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(results), "encoding JSON report")
	}

	for _, res := range results {
		if res == nil {
			continue
		}
		if !res.HasErrors() {
			fmt.Fprintf(r.out, "%s %s: %s\n", r.ok.Sprint("✓"), res.Subject, res.Value)
			continue
		}
		fmt.Fprintf(r.out, "%s %s: %s\n", r.bad.Sprint("✗"), res.Subject, res.Value)
		for _, i := range res.Issues {
			r.writeIssue(i)
		}
	}

	if n := Rejected(results); n > 0 {
		fmt.Fprintf(r.out, "\n%s\n", r.bad.Sprintf("%d of %d check(s) rejected", n, len(results)))
	}
	return nil
}

func (r *Reporter) writeIssue(i Issue) {
	fmt.Fprintf(r.out, "    • %s: %s", r.bad.Sprint(i.Rule), i.Message)
	if i.Value != nil {
		v := fmt.Sprint(i.Value)
		if len(v) > 50 {
			v = v[:47] + "..."
		}
		fmt.Fprint(r.out, r.dim.Sprintf(" [%s]", v))
	}
	fmt.Fprintln(r.out)
}
