package intrusive

import (
	"io"
	"reflect"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rawbytedev/intrusive/internal/common"
)

var logger = logrus.WithField("module", "intrusive")

// SetLogger redirects declaration logging. A nil entry silences it.
// Call it before declaring any pairing.
func SetLogger(l *logrus.Entry) {
	if l == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		l = logrus.NewEntry(discard)
	}
	logger = l
}

type layoutKey struct {
	container reflect.Type
	path      string
}

// registry caches one Descriptor per (container, path). Failed lookups are
// not cached.
type registry struct {
	mu      sync.RWMutex
	layouts map[layoutKey]Descriptor
}

var layouts = &registry{layouts: make(map[layoutKey]Descriptor)}

func (r *registry) lookup(ct reflect.Type, path string) (Descriptor, error) {
	k := layoutKey{container: ct, path: path}

	r.mu.RLock()
	if d, ok := r.layouts[k]; ok {
		r.mu.RUnlock()
		return d, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check
	if d, ok := r.layouts[k]; ok {
		return d, nil
	}

	d, err := locate(ct, path)
	if err != nil {
		return Descriptor{}, err
	}
	r.layouts[k] = d
	logger.WithFields(logrus.Fields{
		"container": common.TypeName(ct),
		"path":      path,
		"field":     d.Field.String(),
		"offset":    d.Offset,
	}).Debug("declared intrusive field")
	return d, nil
}

func (r *registry) snapshot() []Descriptor {
	r.mu.RLock()
	out := make([]Descriptor, 0, len(r.layouts))
	for _, d := range r.layouts {
		out = append(out, d)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ni, nj := common.TypeName(out[i].Container), common.TypeName(out[j].Container)
		if ni != nj {
			return ni < nj
		}
		if out[i].Offset != out[j].Offset {
			return out[i].Offset < out[j].Offset
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// Descriptors returns every descriptor declared so far, ordered by container
// type name and then by offset.
func Descriptors() []Descriptor {
	return layouts.snapshot()
}
