// Package store is the single data-access layer: all mutations run as one
// gorm transaction each, all list reads are ordered by primary key ascending
// so pagination stays deterministic, and every cross-entity rule (cascade,
// restrict, unique email) has its authoritative twin declared in the schema
// the models produce.
package store

import (
	"gorm.io/gorm"
)

// defaultListLimit caps unpaginated list reads.
const defaultListLimit = 200

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// paged applies the stable list ordering plus limit/offset. limit <= 0 or
// above the cap falls back to the default.
func paged(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.Order("id asc").Limit(limit).Offset(offset)
}
