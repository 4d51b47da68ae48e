package opcode

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnsupportedVersion is returned when a (major, minor) pair has no opcode
// map.
var ErrUnsupportedVersion = errors.New("unsupported runtime version")

// Version identifies one runtime release by its major and minor number.
type Version struct {
	Major int
	Minor int
}

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Wordcode reports whether instructions use the fixed two-byte encoding.
// Releases from 3.6 on do; everything earlier uses the variable-width
// encoding with a 16-bit operand.
func (v Version) Wordcode() bool {
	return v.Major > 3 || (v.Major == 3 && v.Minor >= 6)
}

// Supported reports whether the version has an opcode map.
func (v Version) Supported() bool {
	_, ok := tables[v]
	return ok
}

// Validate returns ErrUnsupportedVersion if the version has no opcode map.
func (v Version) Validate() error {
	if !v.Supported() {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}
	return nil
}

// Opcode translates a raw opcode byte of this version into a canonical Op.
// Unsupported versions and unused bytes yield OpInvalid.
func (v Version) Opcode(raw byte) Op {
	t, ok := tables[v]
	if !ok {
		return OpInvalid
	}
	return t[raw]
}

// Less orders versions by release.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// RawToCanonical translates a raw opcode byte of the given release into a
// canonical Op. An unknown release, or a byte the release does not use,
// yields OpInvalid.
func RawToCanonical(major, minor int, raw byte) Op {
	return Version{Major: major, Minor: minor}.Opcode(raw)
}

// ParseVersion parses "major.minor" and checks that the version is supported.
func ParseVersion(s string) (Version, error) {
	majStr, minStr, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}
	major, err := strconv.Atoi(majStr)
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version in %q: %w", s, err)
	}
	minor, err := strconv.Atoi(minStr)
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version in %q: %w", s, err)
	}
	v := Version{Major: major, Minor: minor}
	if err := v.Validate(); err != nil {
		return Version{}, err
	}
	return v, nil
}

// Versions returns every supported version in release order.
func Versions() []Version {
	vs := make([]Version, 0, len(tables))
	for v := range tables {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
	return vs
}

// Map returns the raw byte -> canonical opcode entries a version defines,
// in raw byte order. Unused bytes are left out.
func (v Version) Map() []Mapping {
	t, ok := tables[v]
	if !ok {
		return nil
	}
	var out []Mapping
	for raw, op := range t {
		if op != OpInvalid {
			out = append(out, Mapping{Raw: byte(raw), Op: op})
		}
	}
	return out
}

// Mapping is one raw byte of a version and the canonical opcode it means.
type Mapping struct {
	Raw byte
	Op  Op
}

// tables holds the opcode map of each supported release.
var tables = map[Version]*table{
	{1, 0}: python10,
	{1, 1}: python11,
	{1, 3}: python13,
	{1, 4}: python14,
	{1, 5}: python15,
	{1, 6}: python16,
	{2, 0}: python20,
	{2, 1}: python21,
	{2, 2}: python22,
	{2, 3}: python23,
	{2, 4}: python24,
	{2, 5}: python25,
	{2, 6}: python26,
	{2, 7}: python27,
	{3, 0}: python30,
	{3, 1}: python31,
	{3, 2}: python32,
	{3, 3}: python33,
	{3, 4}: python34,
	{3, 5}: python35,
	{3, 6}: python36,
}
