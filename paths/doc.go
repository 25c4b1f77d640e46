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

// Package paths contains functions to prepare paths to famicore resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the regression database.
//
//	d, err := paths.ResourcePath("regression", "db")
//
// For builds without the "release" build tag the base path is the ".famicore"
// directory in the program's current directory. For release builds the base
// path is rooted in the user's configuration directory, as reported by
// os.UserConfigDir(). In either case the directory is created if it does not
// yet exist.
package paths
