// Package index stores decoded instructions in SQLite so listings can be
// queried after the fact.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"
	_ "modernc.org/sqlite"

	"github.com/chazu/pydis/bytecode"
	"github.com/chazu/pydis/object"
	"github.com/chazu/pydis/opcode"
)

var log = commonlog.GetLogger("pydis.index")

// ErrUnitNotFound indicates the requested code unit isn't in the index.
var ErrUnitNotFound = errors.New("unit not found")

const schema = `
CREATE TABLE IF NOT EXISTS units (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	filename TEXT NOT NULL,
	major    INTEGER NOT NULL,
	minor    INTEGER NOT NULL,
	parent   TEXT
);
CREATE TABLE IF NOT EXISTS instructions (
	unit_id  TEXT NOT NULL REFERENCES units(id),
	"offset" INTEGER NOT NULL,
	opcode   INTEGER NOT NULL,
	name     TEXT NOT NULL,
	operand  INTEGER NOT NULL,
	argument TEXT NOT NULL,
	PRIMARY KEY (unit_id, "offset")
);
CREATE INDEX IF NOT EXISTS instructions_name ON instructions(name);
`

// Store is an instruction index backed by one SQLite database.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// Unit is one indexed code unit.
type Unit struct {
	ID       string
	Name     string
	Filename string
	Version  opcode.Version
	Parent   string // empty for top-level units
}

// Row is one indexed instruction.
type Row struct {
	Offset   int
	Opcode   opcode.Op
	Name     string
	Operand  int
	Argument string // operand as the listing renders it
}

// Count is one entry of an opcode histogram.
type Count struct {
	Name  string
	Count int
}

// Open opens or creates the index at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	log.Debugf("opened index %s", path)
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AddUnit decodes code and stores it with its instructions, then does the
// same for every nested code unit in its constant pool. parent is the ID of
// the enclosing unit, or "" for a top-level one. It returns the new unit's
// ID. Nothing is stored if any unit fails to decode.
func (s *Store) AddUnit(code *object.Code, ver opcode.Version, parent string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}

	id, err := addUnit(tx, code, ver, parent)
	if err != nil {
		tx.Rollback()
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing unit %s: %w", code.Name, err)
	}
	return id, nil
}

func addUnit(tx *sql.Tx, code *object.Code, ver opcode.Version, parent string) (string, error) {
	id := uuid.New().String()

	var parentID sql.NullString
	if parent != "" {
		parentID = sql.NullString{String: parent, Valid: true}
	}
	_, err := tx.Exec(
		"INSERT INTO units (id, name, filename, major, minor, parent) VALUES (?, ?, ?, ?, ?, ?)",
		id, code.Name, code.Filename, ver.Major, ver.Minor, parentID,
	)
	if err != nil {
		return "", fmt.Errorf("saving unit %s: %w", code.Name, err)
	}

	instrs, err := bytecode.Decode(code.Bytecode(), ver)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", code.Name, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO instructions (unit_id, "offset", opcode, name, operand, argument) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, ins := range instrs {
		arg, err := bytecode.FormatOperand(code, ins, ver.Major)
		if err != nil {
			return "", fmt.Errorf("%s: offset %d: %w", code.Name, ins.Offset, err)
		}
		if _, err := stmt.Exec(id, ins.Offset, int(ins.Op), ins.Op.String(), ins.Operand, arg); err != nil {
			return "", fmt.Errorf("saving instruction: %w", err)
		}
	}
	log.Debugf("indexed %s (%d instructions) as %s", code.Name, len(instrs), id)

	for _, nested := range code.Nested() {
		if _, err := addUnit(tx, nested, ver, id); err != nil {
			return "", err
		}
	}
	return id, nil
}

// Unit returns one indexed unit.
func (s *Store) Unit(id string) (*Unit, error) {
	var u Unit
	var parent sql.NullString
	err := s.db.QueryRow(
		"SELECT id, name, filename, major, minor, parent FROM units WHERE id = ?", id,
	).Scan(&u.ID, &u.Name, &u.Filename, &u.Version.Major, &u.Version.Minor, &parent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnitNotFound
		}
		return nil, fmt.Errorf("querying unit: %w", err)
	}
	u.Parent = parent.String
	return &u, nil
}

// Units returns the units whose parent is parent, or the top-level units
// when parent is "".
func (s *Store) Units(parent string) ([]Unit, error) {
	query := "SELECT id, name, filename, major, minor, parent FROM units WHERE parent = ? ORDER BY rowid"
	args := []any{parent}
	if parent == "" {
		query = "SELECT id, name, filename, major, minor, parent FROM units WHERE parent IS NULL ORDER BY rowid"
		args = nil
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying units: %w", err)
	}
	defer rows.Close()

	var out []Unit
	for rows.Next() {
		var u Unit
		var p sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Filename, &u.Version.Major, &u.Version.Minor, &p); err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}
		u.Parent = p.String
		out = append(out, u)
	}
	return out, rows.Err()
}

// Instructions returns the instructions of a unit in offset order.
func (s *Store) Instructions(unitID string) ([]Row, error) {
	if _, err := s.Unit(unitID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT "offset", opcode, name, operand, argument FROM instructions WHERE unit_id = ? ORDER BY "offset"`,
		unitID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying instructions: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var op int
		if err := rows.Scan(&r.Offset, &op, &r.Name, &r.Operand, &r.Argument); err != nil {
			return nil, fmt.Errorf("scanning instruction: %w", err)
		}
		r.Opcode = opcode.Op(op)
		out = append(out, r)
	}
	return out, rows.Err()
}

// OpcodeHistogram counts indexed instructions by opcode name, most frequent
// first.
func (s *Store) OpcodeHistogram() ([]Count, error) {
	rows, err := s.db.Query(
		"SELECT name, COUNT(*) AS n FROM instructions GROUP BY name ORDER BY n DESC, name",
	)
	if err != nil {
		return nil, fmt.Errorf("querying histogram: %w", err)
	}
	defer rows.Close()

	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning histogram: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
