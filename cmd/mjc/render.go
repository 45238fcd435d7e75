package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"mjc/pkg/compiler"
)

var (
	colorError   = lipgloss.Color("#EF4444") // red
	colorWarning = lipgloss.Color("#F59E0B") // amber
	colorSuccess = lipgloss.Color("#10B981") // emerald
	colorMuted   = lipgloss.Color("#6B7280") // gray
)

// renderer writes diagnostics for humans.
type renderer struct {
	w io.Writer

	file    lipgloss.Style
	pos     lipgloss.Style
	kinds   map[compiler.ErrorKind]lipgloss.Style
	ok      lipgloss.Style
	summary lipgloss.Style
}

func newRenderer(w io.Writer, color bool) *renderer {
	r := lipgloss.NewRenderer(w)
	plain := r.NewStyle()
	if !color {
		return &renderer{
			w:       w,
			file:    plain,
			pos:     plain,
			kinds:   map[compiler.ErrorKind]lipgloss.Style{},
			ok:      plain,
			summary: plain,
		}
	}
	return &renderer{
		w:    w,
		file: r.NewStyle().Bold(true),
		pos:  r.NewStyle().Foreground(colorMuted),
		kinds: map[compiler.ErrorKind]lipgloss.Style{
			compiler.Lexical:  r.NewStyle().Foreground(colorWarning).Bold(true),
			compiler.Syntax:   r.NewStyle().Foreground(colorError).Bold(true),
			compiler.Semantic: r.NewStyle().Foreground(colorError),
		},
		ok:      r.NewStyle().Foreground(colorSuccess).Bold(true),
		summary: r.NewStyle().Foreground(colorError).Bold(true),
	}
}

func (r *renderer) kind(k compiler.ErrorKind) string {
	label := k.String() + " error"
	if st, ok := r.kinds[k]; ok {
		return st.Render(label)
	}
	return label
}

// diagnostics prints one line per diagnostic:
//
//	Sample.mj:3:5: syntax error: ; expected
func (r *renderer) diagnostics(file string, errs compiler.ErrorList) {
	for _, d := range errs {
		fmt.Fprintf(r.w, "%s:%s: %s: %s\n",
			r.file.Render(file),
			r.pos.Render(fmt.Sprintf("%d:%d", d.Line, d.Col)),
			r.kind(d.Kind),
			d.Msg)
	}
}

// result prints the diagnostics of a compilation followed by a summary line.
func (r *renderer) result(file string, res *compiler.Result) {
	r.diagnostics(file, res.Errors)
	if res.OK() {
		fmt.Fprintf(r.w, "%s: %s\n", r.file.Render(file), r.ok.Render("ok"))
		return
	}
	noun := "errors"
	if len(res.Errors) == 1 {
		noun = "error"
	}
	fmt.Fprintf(r.w, "%s: %s\n", r.file.Render(file), r.summary.Render(fmt.Sprintf("%d %s", len(res.Errors), noun)))
}

// report is the machine-readable form of one compilation.
type report struct {
	File    string                `yaml:"file"`
	Unit    string                `yaml:"unit"`
	Program string                `yaml:"program"`
	OK      bool                  `yaml:"ok"`
	Errors  []compiler.Diagnostic `yaml:"errors"`
}

func newReport(file string, res *compiler.Result) report {
	errs := res.Errors
	if errs == nil {
		errs = compiler.ErrorList{}
	}
	return report{
		File:    file,
		Unit:    res.ID.String(),
		Program: res.Program.Name,
		OK:      res.OK(),
		Errors:  errs,
	}
}

// writeYAML encodes reports as a YAML sequence.
func writeYAML(w io.Writer, reports []report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
