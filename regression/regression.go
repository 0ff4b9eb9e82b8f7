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

package regression

import (
	"fmt"
	"io"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/database"
)

// DefaultDBFile is the regression database used when no other path is
// given on the command line.
const DefaultDBFile = ".continuum_regressionDB"

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test. the newRegression flag indicates that
	// the test is being run for the first time and the result should be
	// stored rather than compared
	regress(newRegression bool, output io.Writer) (bool, error)
}

// when starting a database session we need to register what entries we
// will find in the database
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(frameEntryID, deserialiseFrameEntry); err != nil {
		return err
	}
	if err := db.RegisterEntryType(playbackEntryID, deserialisePlaybackEntry); err != nil {
		return err
	}
	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbFile string) error {
	db, err := database.StartSession(dbFile, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression test to the database, running it once
// to record the expected result.
func RegressAdd(output io.Writer, dbFile string, reg Regressor) error {
	db, err := database.StartSession(dbFile, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ok, err := reg.regress(true, output)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	if !ok {
		return curated.Errorf("regression: %v", "could not establish a baseline")
	}

	fmt.Fprintf(output, "added: %s\n", reg.String())

	return db.Add(reg)
}

// RegressDelete removes an entry from the database.
func RegressDelete(output io.Writer, dbFile string, key int) error {
	db, err := database.StartSession(dbFile, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	if err := db.Delete(key); err != nil {
		return err
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", key)

	return nil
}

// RegressRun runs the specified regression tests, or every test if the key
// list is empty. The returned error reflects database problems; individual
// test failures are reported through the output writer and the counts.
func RegressRun(output io.Writer, dbFile string, keys ...int) (succeed, fail int, rerr error) {
	db, err := database.StartSession(dbFile, database.ActivityReading, initDBSession)
	if err != nil {
		return 0, 0, err
	}
	defer db.EndSession(false)

	onSelect := func(ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: unexpected entry type [%s]", ent.ID())
		}

		ok, err := reg.regress(false, output)
		if err != nil {
			fail++
			fmt.Fprintf(output, "failure: %s [%v]\n", reg.String(), err)
			return nil
		}
		if !ok {
			fail++
			fmt.Fprintf(output, "failure: %s\n", reg.String())
			return nil
		}

		succeed++
		fmt.Fprintf(output, "succeed: %s\n", reg.String())
		return nil
	}

	if _, err := db.SelectKeys(onSelect, keys...); err != nil {
		return succeed, fail, err
	}

	return succeed, fail, nil
}
