package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/viant/baiwen/asset"
	"github.com/viant/baiwen/asset/matcher"
)

const (
	Name    = "Baiwen"
	Version = "v0.1.0"
)

// Reporter writes run progress and results.
type Reporter struct {
	out      io.Writer
	status   io.Writer
	format   Format
	sorted   bool
	fullPath bool
}

// Entry represents one reported source.
type Entry struct {
	File   string `json:"file"`
	Source string `json:"source"`
}

// Banner prints the tool banner.
func (r *Reporter) Banner() {
	fmt.Fprintf(r.status, "--  %s [%s]  --\n", Name, Version)
}

// Request echoes the parsed request.
func (r *Reporter) Request(pattern, types, location string) {
	fmt.Fprintf(r.status, "> Trying to match [ %s ] with type [ %s ] in [ %s ]\n", pattern, types, DisplayName(location))
}

// Done prints elapsed time of the read, parse and filter phase.
func (r *Reporter) Done(elapsed time.Duration) {
	fmt.Fprintf(r.status, "> Done! (%v)\n\n", elapsed)
}

// UnknownType prints guidance for an unrecognized type label.
func (r *Reporter) UnknownType(label string, valid []asset.Type) {
	fmt.Fprintf(r.status, "Error: '%s' is not a recognized type. Please use one of the following valid types:\n", label)
	for _, t := range valid {
		fmt.Fprintf(r.status, "> %s\n", t)
	}
}

// Entries converts sources into report entries.
func (r *Reporter) Entries(sources matcher.Sources) []Entry {
	var names []string
	if r.sorted {
		names = sources.Sorted()
	} else {
		names = sources.Slice()
	}
	ret := make([]Entry, 0, len(names))
	for _, source := range names {
		ret = append(ret, Entry{File: DisplayName(source), Source: source})
	}
	return ret
}

// Sources prints matched sources in the configured format.
func (r *Reporter) Sources(sources matcher.Sources) error {
	entries := r.Entries(sources)
	switch r.format {
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	case FormatTable:
		if err := r.header(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(r.out, r.table(entries))
		return err
	default:
		if err := r.header(); err != nil {
			return err
		}
		for _, entry := range entries {
			if _, err := fmt.Fprintf(r.out, "  > %s\n", r.label(entry)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Reporter) header() error {
	_, err := fmt.Fprintln(r.out, "> Unique sources that contain a matching name and type:")
	return err
}

func (r *Reporter) label(entry Entry) string {
	if r.fullPath {
		return entry.Source
	}
	return entry.File
}

func (r *Reporter) table(entries []Entry) string {
	tw := table.NewWriter()
	if isTerminal(r.out) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(table.Row{"#", "File", "Source"})
	for i, entry := range entries {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), entry.File, entry.Source})
	}
	return tw.Render()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New creates a reporter writing results to out. Status lines go to out as
// well, except for JSON output where they go to errOut.
func New(out, errOut io.Writer, opts ...Option) *Reporter {
	ret := &Reporter{out: out, format: FormatText}
	for _, opt := range opts {
		opt(ret)
	}
	ret.status = out
	if ret.format == FormatJSON {
		ret.status = errOut
	}
	return ret
}
