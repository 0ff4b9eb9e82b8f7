// This file is part of Continuum.
//
// Continuum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Continuum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Continuum.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sam-mfb/continuum-sub007/curated"
)

// arbitrary maximum number of entries
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// Activity describes the broad purpose of a database session.
type Activity int

// The valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database open for reading or modification.
type Session struct {
	path     string
	activity Activity

	entryTypes map[string]deserialiser
	entries    map[int]Entry
}

// StartSession opens a database file and deserialises its entries. The
// init function should register the expected entry types.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entryTypes: make(map[string]deserialiser),
		entries:    make(map[int]Entry),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) || activity != ActivityCreating {
			return nil, curated.Errorf("database: %v", err)
		}
		return db, nil
	}

	for i, rec := range strings.Split(string(data), entrySep) {
		if strings.TrimSpace(rec) == "" {
			continue
		}

		fields := strings.Split(rec, fieldSep)
		if len(fields) < numLeaderFields {
			return nil, curated.Errorf("database: malformed entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return nil, curated.Errorf("database: invalid key at line %d", i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return nil, curated.Errorf("database: unrecognised entry type [%s]", fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return nil, curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}

	return db, nil
}

// EndSession closes the database, writing any changes to disk when
// commitChanges is true.
func (db *Session) EndSession(commitChanges bool) error {
	defer func() {
		db.entries = nil
		db.entryTypes = nil
	}()

	if !commitChanges {
		return nil
	}
	if db.activity == ActivityReading {
		return curated.Errorf("database: %v", "cannot commit to a read-only session")
	}

	f, err := os.Create(db.path)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}
	defer f.Close()

	for _, key := range db.SortedKeyList() {
		ser, err := db.entries[key].Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		rec := make([]string, 0, numLeaderFields+len(ser))
		rec = append(rec, fmt.Sprintf("%03d", key), db.entries[key].ID())
		rec = append(rec, ser...)

		if _, err := io.WriteString(f, strings.Join(rec, fieldSep)+entrySep); err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key].String()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the db.
func (db *Session) Add(ent Entry) error {
	var key int

	// find spare key
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}
	if key == maxEntries {
		return curated.Errorf("database: maximum entries exceeded (max %d)", maxEntries)
	}

	db.entries[key] = ent

	return nil
}

// Delete the entry with the specified key.
func (db *Session) Delete(key int) error {
	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf("database: key not available (%d)", key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	delete(db.entries, key)

	return nil
}

// Get returns the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf("database: key not available (%d)", key)
	}
	return ent, nil
}
