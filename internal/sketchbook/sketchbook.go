/*
 * sketchbook.go, part of verchem.
 *
 * Copyright 2026 The verchem authors <verchem{at}verchemDOTxyz>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Verchem is developed for chemistry instruction at secondary-school
 * and introductory university level.
 *
 */

//Package sketchbook keeps saved sketches in a small SQLite file, so a
//student can put a molecule down at the end of a lesson and pick it up
//again in the next one. Each sketch is stored under a name chosen by the
//student, with its formula and stability alongside so listings don't have
//to decode anything.
package sketchbook

import (
	"bufio"
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemjson"
	_ "modernc.org/sqlite"
)

//Entry is one line of a sketchbook listing.
type Entry struct {
	Name    string
	Formula string
	Stable  bool
	Atoms   int
	Bonds   int
	Created time.Time
	Updated time.Time
}

//Book is an open sketchbook. It is not safe for concurrent use from
//several goroutines, which is fine for a single-user desktop program.
type Book struct {
	db *sql.DB
}

//Open opens the sketchbook at path, creating the file and its directory
//if they don't exist yet. The special path ":memory:" gives a throwaway
//sketchbook that lives only as long as the program.
func Open(path string) (*Book, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("preparing the sketchbook directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening the sketchbook: %w", err)
	}
	db.SetMaxOpenConns(1) //SQLite doesn't take concurrent writes
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing the sketchbook: %w", err)
	}
	return &Book{db: db}, nil
}

//Close closes the sketchbook file.
func (B *Book) Close() error {
	return B.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS sketches (
			name TEXT PRIMARY KEY,
			scene BLOB NOT NULL,
			formula TEXT NOT NULL,
			stable INTEGER NOT NULL,
			atoms INTEGER NOT NULL,
			bonds INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

//Save stores the sketch S under the given name, replacing any previous
//sketch of that name. The sketch is encoded with chemjson, so anything a
//host can receive, the sketchbook can keep.
func (B *Book) Save(name string, S chem.Bonder) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("a sketch needs a name before it can be saved")
	}
	sc := chemjson.FromSketch(S, nil)
	var buf bytes.Buffer
	if err := sc.Transmit(&buf); err != nil {
		return fmt.Errorf("encoding sketch %q: %w", name, err)
	}
	now := time.Now().Format(time.RFC3339Nano)
	//the COALESCE keeps the original created_at when a sketch is overwritten
	_, err := B.db.Exec(`
		INSERT OR REPLACE INTO sketches
			(name, scene, formula, stable, atoms, bonds, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?,
			COALESCE((SELECT created_at FROM sketches WHERE name = ?), ?), ?)
	`, name, buf.Bytes(), sc.Header.Formula, boolInt(sc.Header.Stable),
		sc.Header.Natoms, sc.Header.Nbonds, name, now, now)
	if err != nil {
		return fmt.Errorf("saving sketch %q: %w", name, err)
	}
	return nil
}

//Load retrieves the sketch saved under name and rebuilds it into a live
//diagram. Atom ids are assigned fresh during the rebuild, so they will
//usually differ from the ids the sketch had when it was saved.
func (B *Book) Load(name string) (*chem.Diagram, error) {
	var blob []byte
	err := B.db.QueryRow(`SELECT scene FROM sketches WHERE name = ?`, name).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no sketch named %q in the sketchbook", name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading sketch %q: %w", name, err)
	}
	sc, jerr := chemjson.DecodeScene(bufio.NewReader(bytes.NewReader(blob)))
	if jerr != nil {
		return nil, fmt.Errorf("decoding sketch %q: %w", name, jerr)
	}
	S, _, jerr := sc.Rebuild()
	if jerr != nil {
		return nil, fmt.Errorf("rebuilding sketch %q: %w", name, jerr)
	}
	return S, nil
}

//List returns an entry for every saved sketch, ordered by name.
func (B *Book) List() ([]Entry, error) {
	rows, err := B.db.Query(`
		SELECT name, formula, stable, atoms, bonds, created_at, updated_at
		FROM sketches ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("listing the sketchbook: %w", err)
	}
	defer rows.Close()
	var entries []Entry
	for rows.Next() {
		var en Entry
		var stable int
		var created, updated string
		err := rows.Scan(&en.Name, &en.Formula, &stable, &en.Atoms, &en.Bonds,
			&created, &updated)
		if err != nil {
			return nil, fmt.Errorf("listing the sketchbook: %w", err)
		}
		en.Stable = stable != 0
		if en.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("sketch %q carries a bad timestamp: %w", en.Name, err)
		}
		if en.Updated, err = time.Parse(time.RFC3339Nano, updated); err != nil {
			return nil, fmt.Errorf("sketch %q carries a bad timestamp: %w", en.Name, err)
		}
		entries = append(entries, en)
	}
	return entries, rows.Err()
}

//Delete removes the sketch saved under name. Deleting a sketch that isn't
//there is reported, as it usually means a typo.
func (B *Book) Delete(name string) error {
	res, err := B.db.Exec(`DELETE FROM sketches WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting sketch %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting sketch %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("no sketch named %q in the sketchbook", name)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
