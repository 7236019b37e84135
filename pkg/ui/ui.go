// Package ui renders command results for the terminal, as plain text or as
// JSON.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/wslaunch/pkg/diff"
	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/types"
	"github.com/arthur-debert/wslaunch/pkg/workspace"
	"github.com/pterm/pterm"
)

// Renderer writes results in one format
type Renderer struct {
	out    io.Writer
	format Format
	styles Styles
}

// NewRenderer creates a renderer. FormatAuto is resolved against output.
func NewRenderer(format Format, output io.Writer) *Renderer {
	format = format.Resolve(output)
	if format == FormatTerminal {
		pterm.EnableStyling()
	} else {
		pterm.DisableStyling()
	}
	return &Renderer{
		out:    output,
		format: format,
		styles: NewStyles(output, format == FormatTerminal),
	}
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

type resultJSON struct {
	ID           string `json:"id"`
	Fingerprint  string `json:"fingerprint"`
	Materialized bool   `json:"materialized"`
	Location     string `json:"location,omitempty"`
	Link         string `json:"link,omitempty"`
}

// Result reports a materialization. location is shown as given.
func (r *Renderer) Result(res workspace.Result, location string) error {
	if r.format == FormatJSON {
		return r.json(resultJSON{
			ID:           res.Spec.ID,
			Fingerprint:  res.Fingerprint,
			Materialized: res.Materialized,
			Location:     location,
			Link:         res.Link,
		})
	}

	switch {
	case location == "":
		r.line(r.styles.Warning.Render("No backing store;") + " template normalized but not written")
	case res.Materialized:
		r.line(r.styles.Success.Render("Materialized") + " " + r.styles.Path.Render(location))
	default:
		r.line(r.styles.Muted.Render("Unchanged") + " " + r.styles.Path.Render(location))
	}
	if res.Link != "" {
		r.line(res.Link)
	}
	return nil
}

type fileJSON struct {
	Path     string `json:"path"`
	Encoding string `json:"encoding"`
	Size     int    `json:"size"`
}

type planJSON struct {
	ID          string     `json:"id"`
	Fingerprint string     `json:"fingerprint"`
	Directories []string   `json:"directories"`
	Files       []fileJSON `json:"files"`
}

// Plan shows a normalized spec and its fingerprint
func (r *Renderer) Plan(spec *types.Spec, fingerprint string) error {
	if r.format == FormatJSON {
		p := planJSON{
			ID:          spec.ID,
			Fingerprint: fingerprint,
			Directories: append([]string{}, spec.Directories...),
			Files:       make([]fileJSON, 0, len(spec.Files)),
		}
		for _, f := range spec.Files {
			p.Files = append(p.Files, fileJSON{
				Path:     f.Path,
				Encoding: string(f.Encoding.Normalize()),
				Size:     len(f.Content),
			})
		}
		return r.json(p)
	}

	tree, err := RenderTree(spec)
	if err != nil {
		return err
	}
	fmt.Fprint(r.out, tree)
	r.line(r.styles.Muted.Render(fingerprint))
	if dups := spec.DuplicatePaths(); len(dups) > 0 {
		r.line(r.styles.Warning.Render("Duplicate paths:") + " " + strings.Join(dups, ", "))
	}
	return nil
}

type changeJSON struct {
	Kind   string `json:"kind"`
	Path   string `json:"path"`
	Dir    bool   `json:"dir,omitempty"`
	Binary bool   `json:"binary,omitempty"`
	Patch  string `json:"patch,omitempty"`
}

// Changes lists what a materialization would change
func (r *Renderer) Changes(changes []diff.Change) error {
	if r.format == FormatJSON {
		out := make([]changeJSON, 0, len(changes))
		for _, c := range changes {
			out = append(out, changeJSON{
				Kind:   string(c.Kind),
				Path:   c.Path,
				Dir:    c.Dir,
				Binary: c.Binary,
				Patch:  c.Patch,
			})
		}
		return r.json(out)
	}

	if len(changes) == 0 {
		r.line(r.styles.Muted.Render("No changes"))
		return nil
	}
	for _, c := range changes {
		name := c.Path
		if c.Dir {
			name += "/"
		}
		switch c.Kind {
		case diff.Added:
			r.line(r.styles.Added.Render("+ " + name))
		case diff.Removed:
			r.line(r.styles.Removed.Render("- " + name))
		default:
			r.line(r.styles.Changed.Render("~ " + name))
		}
		if c.Patch != "" {
			fmt.Fprint(r.out, c.Patch)
		}
	}
	summary := diff.Summary(changes)
	r.line(r.styles.Muted.Render(fmt.Sprintf("%d added, %d removed, %d modified",
		summary[diff.Added], summary[diff.Removed], summary[diff.Modified])))
	return nil
}

// Message prints a plain line
func (r *Renderer) Message(msg string) error {
	if r.format == FormatJSON {
		return r.json(map[string]string{"message": msg})
	}
	r.line(msg)
	return nil
}

type errorJSON struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error reports err with its code and details
func (r *Renderer) Error(err error) error {
	if r.format == FormatJSON {
		return r.json(map[string]errorJSON{"error": {
			Code:    string(errors.GetErrorCode(err)),
			Message: err.Error(),
			Details: errors.GetErrorDetails(err),
		}})
	}
	r.line(r.styles.Error.Render("Error:") + " " + err.Error())
	return nil
}

func (r *Renderer) line(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Renderer) json(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
