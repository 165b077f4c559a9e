package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivercross/bfs"
)

// report is the serializable summary of one search.
type report struct {
	Solved   bool     `json:"solved" yaml:"solved"`
	Moves    []string `json:"moves,omitempty" yaml:"moves,omitempty"`
	Expanded int      `json:"expanded" yaml:"expanded"`
	Pruned   int      `json:"pruned" yaml:"pruned"`
}

func newReport(res *bfs.BFSResult) report {
	return report{
		Solved:   res.Found,
		Moves:    res.Descriptions(),
		Expanded: len(res.Order),
		Pruned:   res.Pruned,
	}
}

type reportWriter func(w io.Writer, r report) error

var writers = map[string]reportWriter{
	"text": writeText,
	"json": writeJSON,
	"yaml": writeYAML,
}

// writerFor resolves an output format name.
func writerFor(format string) (reportWriter, error) {
	if w, ok := writers[strings.ToLower(strings.TrimSpace(format))]; ok {
		return w, nil
	}
	names := make([]string, 0, len(writers))
	for n := range writers {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unknown format %q (want %s)", format, strings.Join(names, "|"))
}

func writeText(w io.Writer, r report) error {
	if !r.Solved {
		_, err := fmt.Fprintln(w, "No solution found!")
		return err
	}
	var sb strings.Builder
	sb.WriteString("Solution found!\n\nSteps to solve:\n")
	for i, m := range r.Moves {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, m)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
