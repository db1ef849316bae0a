// Package report renders a completed check as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/namecheck/internal/check"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/status"
)

// Format specifies the output format of a report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Newf("unknown format %q (valid: text, json, yaml)", s)
}

// Renderer writes reports to out.
type Renderer struct {
	out    io.Writer
	format Format
	color  bool
}

// NewRenderer creates a Renderer. Color applies to text output only.
func NewRenderer(out io.Writer, format Format, useColor bool) *Renderer {
	return &Renderer{out: out, format: format, color: useColor}
}

// Render writes res in the renderer's format. Nothing is written when a
// cell of the table is missing.
func (r *Renderer) Render(res *check.Result) error {
	if err := complete(res); err != nil {
		return err
	}
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(newDocument(res)), "encoding JSON report")
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(res)); err != nil {
			return errors.Wrap(err, "encoding YAML report")
		}
		return errors.Wrap(enc.Close(), "encoding YAML report")
	default:
		r.renderText(res)
		return nil
	}
}

// complete checks that every (username, platform) cell holds a status.
func complete(res *check.Result) error {
	for _, u := range res.Usernames {
		for _, id := range res.Platforms {
			if st, ok := res.Table.Get(u, id); !ok || st.IsZero() {
				return errors.AssertionFailedf("no status for %s/%s", id, u)
			}
		}
	}
	return nil
}

// Marker returns the symbol shown before a status.
func Marker(s status.Status) string {
	switch s.Kind() {
	case status.KindAvailable:
		return "✅"
	case status.KindTaken:
		return "❌"
	case status.KindInvalidFormat:
		return "❓"
	default:
		return "⚠️"
	}
}

func (r *Renderer) renderText(res *check.Result) {
	palette := map[status.Kind]*color.Color{
		status.KindAvailable:     r.paint(color.FgGreen),
		status.KindTaken:         r.paint(color.FgRed),
		status.KindInvalidFormat: r.paint(color.FgYellow),
		status.KindError:         r.paint(color.FgHiBlack),
	}
	bold := r.paint(color.Bold)

	fmt.Fprint(r.out, "🔍 username availability results:\n\n")
	for _, u := range res.Usernames {
		fmt.Fprintf(r.out, "— %s\n", bold.Sprint(u))
		for _, id := range res.Platforms {
			st, _ := res.Table.Get(u, id)
			fmt.Fprintf(r.out, "   %-10s: %s %s\n", id, Marker(st), palette[st.Kind()].Sprint(st.String()))
		}
		fmt.Fprintln(r.out)
	}
}

// paint returns a color that ignores the global NO_COLOR detection in
// favor of the renderer's setting.
func (r *Renderer) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// document is the machine-readable form of a result.
type document struct {
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Platforms []platform.ID `json:"platforms" yaml:"platforms"`
	Results   []userResult  `json:"results" yaml:"results"`
	Phases    []check.Phase `json:"phases" yaml:"phases"`
	Summary   Summary       `json:"summary" yaml:"summary"`
}

type userResult struct {
	Username string  `json:"username" yaml:"username"`
	Checks   []entry `json:"checks" yaml:"checks"`
}

type entry struct {
	Platform platform.ID `json:"platform" yaml:"platform"`
	Kind     string      `json:"kind" yaml:"kind"`
	Reason   string      `json:"reason,omitempty" yaml:"reason,omitempty"`
	Status   string      `json:"status" yaml:"status"`
}

// Summary counts statuses by kind.
type Summary struct {
	Available     int `json:"available" yaml:"available"`
	Taken         int `json:"taken" yaml:"taken"`
	InvalidFormat int `json:"invalid_format" yaml:"invalid_format"`
	Errors        int `json:"errors" yaml:"errors"`
}

// Summarize counts the statuses of res.
func Summarize(res *check.Result) Summary {
	var s Summary
	for _, u := range res.Usernames {
		for _, id := range res.Platforms {
			st, _ := res.Table.Get(u, id)
			switch st.Kind() {
			case status.KindAvailable:
				s.Available++
			case status.KindTaken:
				s.Taken++
			case status.KindInvalidFormat:
				s.InvalidFormat++
			default:
				s.Errors++
			}
		}
	}
	return s
}

func newDocument(res *check.Result) document {
	doc := document{
		StartedAt: res.StartedAt.UTC(),
		Platforms: res.Platforms,
		Results:   make([]userResult, 0, len(res.Usernames)),
		Phases:    res.Phases,
		Summary:   Summarize(res),
	}
	for _, u := range res.Usernames {
		ur := userResult{Username: u, Checks: make([]entry, 0, len(res.Platforms))}
		for _, id := range res.Platforms {
			st, _ := res.Table.Get(u, id)
			ur.Checks = append(ur.Checks, entry{
				Platform: id,
				Kind:     st.Kind().String(),
				Reason:   st.Reason(),
				Status:   st.String(),
			})
		}
		doc.Results = append(doc.Results, ur)
	}
	return doc
}
