// Package database opens the catalog's gorm connection.
//
// The default backing is a single sqlite file per deployment; mysql is
// available for server-grade installs via database.driver=mysql. Both are
// opened with TranslateError so duplicate-key violations are portable.
package database
