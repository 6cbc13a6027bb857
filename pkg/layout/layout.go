// Package layout reports declared intrusive pairings and detects layout drift
// between builds.
package layout

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/intrusive"
	"github.com/rawbytedev/intrusive/internal/common"
)

// Entry is one declared (container, field) pairing.
type Entry struct {
	Container string `yaml:"container"`
	Path      string `yaml:"path"`
	Field     string `yaml:"field"`
	Offset    uint64 `yaml:"offset"`
	Align     uint64 `yaml:"align"`
	Size      uint64 `yaml:"size"`
}

func (e Entry) key() string { return e.Container + "." + e.Path }

// Snapshot is the document written by Marshal.
type Snapshot struct {
	Entries []Entry `yaml:"entries"`
}

func FromDescriptors(ds []intrusive.Descriptor) []Entry {
	out := make([]Entry, 0, len(ds))
	for _, d := range ds {
		out = append(out, Entry{
			Container: common.TypeName(d.Container),
			Path:      d.Path,
			Field:     d.Field.String(),
			Offset:    uint64(d.Offset),
			Align:     uint64(d.Align),
			Size:      uint64(d.Size),
		})
	}
	return out
}

func Marshal(entries []Entry) ([]byte, error) {
	b, err := yaml.Marshal(Snapshot{Entries: entries})
	if err != nil {
		return nil, errors.Wrap(err, "marshal layout snapshot")
	}
	return b, nil
}

func Unmarshal(data []byte) ([]Entry, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "unmarshal layout snapshot")
	}
	return s.Entries, nil
}

// WriteText writes entries as aligned columns.
func WriteText(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTAINER\tPATH\tFIELD\tOFFSET\tALIGN\tSIZE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n", e.Container, e.Path, e.Field, e.Offset, e.Align, e.Size)
	}
	return tw.Flush()
}

// Drift describes a pairing whose layout differs between two snapshots.
// Got is nil when the pairing disappeared.
type Drift struct {
	Want Entry
	Got  *Entry
}

func (d Drift) String() string {
	if d.Got == nil {
		return fmt.Sprintf("%s: missing", d.Want.key())
	}
	return fmt.Sprintf("%s: want %s@+%d align %d size %d, got %s@+%d align %d size %d",
		d.Want.key(),
		d.Want.Field, d.Want.Offset, d.Want.Align, d.Want.Size,
		d.Got.Field, d.Got.Offset, d.Got.Align, d.Got.Size)
}

// Diff returns the entries of want that are missing from got or laid out
// differently. Entries only present in got are new pairings, not drift.
func Diff(want, got []Entry) []Drift {
	byKey := make(map[string]Entry, len(got))
	for _, e := range got {
		byKey[e.key()] = e
	}
	var out []Drift
	for _, w := range want {
		g, ok := byKey[w.key()]
		if !ok {
			out = append(out, Drift{Want: w})
			continue
		}
		if g != w {
			out = append(out, Drift{Want: w, Got: &g})
		}
	}
	return out
}
