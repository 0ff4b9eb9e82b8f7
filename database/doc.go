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

// Package database is a very simple way of storing structured but
// arbitrary entry types in a flat text file.
//
// Use of a database requires starting a "session" with StartSession(),
// coupled with an EndSession() once we're done:
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The initialisation function registers the entry types the session might
// encounter:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("frame", deserialiseFrameEntry)
//	}
//
// On reading, the database calls the deserialisation function registered
// for each stored entry's ID. Deserialisation functions receive the
// entry's fields and return a value satisfying the Entry interface.
package database
