// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package database_test

import (
	"path/filepath"
	"testing"

	"github.com/sidegate/famicore/database"
	"github.com/sidegate/famicore/test"
)

type testEntry struct {
	key   int
	value string
}

func (ent testEntry) ID() string {
	return "test"
}

func (ent testEntry) String() string {
	return ent.value
}

func (ent *testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.value}, nil
}

func (ent *testEntry) SetKey(key int) {
	ent.key = key
}

func (ent testEntry) GetKey() int {
	return ent.key
}

func (ent testEntry) CleanUp() error {
	return nil
}

func deserialiseTestEntry(key int, fields database.SerialisedEntry) (database.Entry, error) {
	return &testEntry{key: key, value: fields[0]}, nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	// create database and add two entries
	db, err := database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, db.Add(&testEntry{value: "foo"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{value: "bar"}))
	test.Equate(t, db.NumEntries(), 2)

	test.ExpectedSuccess(t, db.EndSession(true))

	// reopen and check the entries came back
	db, err = database.StartSession(pth, database.ActivityModifying, initTestSession)
	test.ExpectedSuccess(t, err)
	test.Equate(t, db.NumEntries(), 2)

	ent, err := db.Get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "foo")

	// delete an entry and commit
	test.ExpectedSuccess(t, db.Delete(0))
	test.Equate(t, db.NumEntries(), 1)
	test.ExpectedSuccess(t, db.EndSession(true))

	// the deletion should have been committed
	db, err = database.StartSession(pth, database.ActivityReading, initTestSession)
	test.ExpectedSuccess(t, err)
	test.Equate(t, db.NumEntries(), 1)

	ent, err = db.Get(1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "bar")

	test.ExpectedSuccess(t, db.EndSession(false))
}

func TestReadOnlySession(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityReading, initTestSession)
	test.ExpectedSuccess(t, err)

	test.ExpectedFailure(t, db.Add(&testEntry{value: "foo"}))
	test.ExpectedFailure(t, db.EndSession(true))
}