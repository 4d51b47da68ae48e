package opcode

// table is a total map from raw opcode byte to canonical opcode for one
// release. Bytes the release does not use hold OpInvalid.
type table [256]Op

func newTable(ops map[byte]Op) *table {
	t := new(table)
	for i := range t {
		t[i] = OpInvalid
	}
	for raw, op := range ops {
		t[raw] = op
	}
	return t
}

// patch returns a copy of t with the bytes in drop unassigned and the
// entries of set applied. Releases are mostly small edits of their
// predecessor, so the maps below are written as such edits.
func (t *table) patch(set map[byte]Op, drop ...byte) *table {
	n := *t
	for _, raw := range drop {
		n[raw] = OpInvalid
	}
	for raw, op := range set {
		n[raw] = op
	}
	return &n
}
