package formpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a map key or a sequence index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a segment addressing a map entry.
func Key(name string) Segment {
	return Segment{key: name}
}

// Index returns a segment addressing a sequence element.
func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

// IsIndex reports whether the segment addresses a sequence element.
func (s Segment) IsIndex() bool { return s.isIndex }

// Key returns the map key of a key segment.
func (s Segment) Key() string { return s.key }

// Index returns the position of an index segment.
func (s Segment) Index() int { return s.index }

// asIndex lets a numeric key address a sequence element, the way "items.0"
// and "items[0]" refer to the same value.
func (s Segment) asIndex() (int, bool) {
	if s.isIndex {
		return s.index, true
	}
	if s.key == "" {
		return 0, false
	}
	i, err := strconv.Atoi(s.key)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

func (s Segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.key
}

// Path is an ordered list of segments addressing a value in a form-data tree.
type Path []Segment

// New builds a path from keys (string) and indexes (int).
// It panics on any other element type.
func New(parts ...any) Path {
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			p = append(p, Key(v))
		case int:
			p = append(p, Index(v))
		case Segment:
			p = append(p, v)
		default:
			panic(fmt.Sprintf("formpath: unsupported segment type %T", part))
		}
	}
	return p
}

// Parse converts dot/bracket notation ("a.b[0].c") into a Path.
func Parse(s string) (Path, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyPath
	}

	var (
		p   Path
		buf strings.Builder
		// expectKey is true right after a dot, where an empty key is malformed.
		expectKey = true
	)

	flush := func() error {
		if buf.Len() == 0 {
			if expectKey {
				return fmt.Errorf("%w: empty key in %q", ErrInvalidPath, s)
			}
			return nil
		}
		p = append(p, Key(buf.String()))
		buf.Reset()
		return nil
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			if err := flush(); err != nil {
				return nil, err
			}
			expectKey = true
		case '[':
			if buf.Len() > 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			} else if expectKey && len(p) > 0 {
				return nil, fmt.Errorf("%w: empty key before index in %q", ErrInvalidPath, s)
			}
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidPath, s)
			}
			raw := s[i+1 : i+end]
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: index %q in %q", ErrInvalidPath, raw, s)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: %d in %q", ErrNegativeIndex, n, s)
			}
			p = append(p, Index(n))
			i += end
			expectKey = false
		case ']':
			return nil, fmt.Errorf("%w: unexpected ']' in %q", ErrInvalidPath, s)
		default:
			buf.WriteByte(c)
			expectKey = true
		}
	}

	if buf.Len() > 0 || expectKey {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical dot/bracket notation of the path.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if !seg.isIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Normalize returns a copy of p with numeric keys turned into indexes, so that
// "items.0" and "items[0]" render to the same string.
func (p Path) Normalize() Path {
	out := make(Path, len(p))
	for i, seg := range p {
		if n, ok := seg.asIndex(); ok && !seg.isIndex {
			seg = Index(n)
		}
		out[i] = seg
	}
	return out
}

// Equal reports whether both paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].equal(other[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix addresses p itself or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if !p[i].equal(prefix[i]) {
			return false
		}
	}
	return true
}

// Overlaps reports whether a write to one path can change the value at the other,
// which is the case when either is a prefix of the other.
func Overlaps(a, b Path) bool {
	return a.HasPrefix(b) || b.HasPrefix(a)
}

func (s Segment) equal(o Segment) bool {
	if s.isIndex == o.isIndex {
		return s.key == o.key && s.index == o.index
	}
	si, ok1 := s.asIndex()
	oi, ok2 := o.asIndex()
	return ok1 && ok2 && si == oi
}
