package specification

import "gorm.io/gorm"

// Specification composes one query predicate or modifier.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
