// Package auxdata - the data store.
//
// Loaders return owned buffers (never write through caller pointers) so
// partial-fill ownership on early termination is unambiguous. Reads are
// best effort by contract: a source shorter than the expected count is
// not an error, it is a Truncated result.
package auxdata

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Kind selects which auxiliary buffer to load.
type Kind int

const (
	KindShift Kind = iota
	KindRotation
	KindShuffle
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindShift:
		return "shift"
	case KindRotation:
		return "rotation"
	case KindShuffle:
		return "shuffle"
	default:
		return "unknown"
	}
}

// FloatBuffer is an owned, load-once real-valued buffer.
type FloatBuffer struct {
	// Values holds the tokens actually present, at most the expected count.
	Values []float64

	// Truncated is set when the source was exhausted before the expected
	// count was reached.
	Truncated bool
}

// IndexBuffer is an owned, load-once permutation buffer with 0-based
// coordinate indices.
type IndexBuffer struct {
	Index     []int
	Truncated bool
}

// Store resolves and loads auxiliary data files under a single data root.
// A Store is stateless beyond the root path and safe for concurrent use.
type Store struct {
	root string
}

// NewStore returns a Store rooted at the given directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Path returns the file path for (kind, version, fn, dim) under the
// store's root, following the published naming convention.
func (s *Store) Path(k Kind, v Version, fn, dim int) string {
	var name string
	switch k {
	case KindRotation:
		name = fmt.Sprintf("M_%d_D%d.txt", fn, dim)
	case KindShift:
		name = fmt.Sprintf("shift_data_%d.txt", fn)
	case KindShuffle:
		name = fmt.Sprintf("shuffle_data_%d_D%d.txt", fn, dim)
	}

	return filepath.Join(s.root, v.Tag(), name)
}

// ExpectedLen returns the element count the sizing rules prescribe for
// (kind, version, fn, dim).
func ExpectedLen(k Kind, v Version, fn, dim int) (int, error) {
	switch k {
	case KindShift:
		return ShiftLen(v, fn, dim)
	case KindRotation:
		return MatrixLen(v, fn, dim)
	case KindShuffle:
		return ShuffleLen(v, fn, dim)
	default:
		return 0, ErrUnsupportedVersion
	}
}

// LoadShift loads the shift vector for (version, fn, dim).
func (s *Store) LoadShift(v Version, fn, dim int) (FloatBuffer, error) {
	want, err := ShiftLen(v, fn, dim)
	if err != nil {
		return FloatBuffer{}, err
	}

	return s.loadFloats(s.Path(KindShift, v, fn, dim), want)
}

// LoadRotation loads the row-major rotation matrix for (version, fn, dim).
func (s *Store) LoadRotation(v Version, fn, dim int) (FloatBuffer, error) {
	want, err := MatrixLen(v, fn, dim)
	if err != nil {
		return FloatBuffer{}, err
	}

	return s.loadFloats(s.Path(KindRotation, v, fn, dim), want)
}

// LoadShuffle loads the coordinate permutation for (version, fn, dim).
// File entries are 1-based per the published convention and are
// normalized to 0-based indices in [0, dim).
func (s *Store) LoadShuffle(v Version, fn, dim int) (IndexBuffer, error) {
	want, err := ShuffleLen(v, fn, dim)
	if err != nil {
		return IndexBuffer{}, err
	}

	raw, err := s.loadFloats(s.Path(KindShuffle, v, fn, dim), want)
	if err != nil {
		return IndexBuffer{}, err
	}

	out := IndexBuffer{Index: make([]int, len(raw.Values)), Truncated: raw.Truncated}
	for i, f := range raw.Values {
		idx := int(f) - 1
		if idx < 0 || idx >= dim {
			return IndexBuffer{}, fmt.Errorf("entry %d value %v: %w", i, f, ErrBadShuffleIndex)
		}
		out.Index[i] = idx
	}

	return out, nil
}

// loadFloats reads up to want whitespace-separated numeric tokens from
// path. Exhausting the source early is not an error (Truncated result);
// a missing or unreadable file is ErrDataUnavailable.
func (s *Store) loadFloats(path string, want int) (FloatBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return FloatBuffer{}, fmt.Errorf("%s: %w", path, ErrDataUnavailable)
	}
	defer f.Close()

	buf := FloatBuffer{Values: make([]float64, 0, want)}
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for len(buf.Values) < want && sc.Scan() {
		val, perr := strconv.ParseFloat(sc.Text(), 64)
		if perr != nil {
			return FloatBuffer{}, fmt.Errorf("%s token %q: %w", path, sc.Text(), ErrBadToken)
		}
		buf.Values = append(buf.Values, val)
	}
	if err := sc.Err(); err != nil {
		return FloatBuffer{}, fmt.Errorf("%s: %w", path, ErrDataUnavailable)
	}
	buf.Truncated = len(buf.Values) < want

	return buf, nil
}
