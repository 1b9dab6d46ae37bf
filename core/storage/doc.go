// Package storage provides the object-storage client used for offsite
// backup uploads (export --upload).
package storage
