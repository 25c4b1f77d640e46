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

package database

// SelectAll entries in the database in key order. onSelect() should return
// false when the select process is to stop. The select process also stops on
// the first error.
func (db Session) SelectAll(onSelect func(Entry) (bool, error)) error {
	if onSelect == nil {
		return nil
	}

	keyList := db.SortedKeyList()

	for k := range keyList {
		cont, err := onSelect(db.entries[keyList[k]])
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}

// SelectKeys matches entries with the specified key(s) in the order given.
// onSelect() should return false when the select process is to stop. An
// empty keys list matches every entry (SelectAll() may be more appropriate
// in that case).
func (db Session) SelectKeys(onSelect func(Entry) (bool, error), keys ...int) error {
	if len(keys) == 0 {
		return db.SelectAll(onSelect)
	}

	if onSelect == nil {
		return nil
	}

	for i := range keys {
		ent, err := db.Get(keys[i])
		if err != nil {
			return err
		}

		cont, err := onSelect(ent)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
