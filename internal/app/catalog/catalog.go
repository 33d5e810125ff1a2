// Package catalog holds the embedded program catalogs. The tables are
// immutable package data passed explicitly to the engine, never mutated at
// runtime; the seed package copies them into Postgres and StaticSource
// serves them directly.
package catalog

import "github.com/jdrincon/acadplan/internal/app/models"

// Program slugs known to the service.
const (
	SlugPhysiotherapy = "physiotherapy"
	SlugNursing       = "nursing"
)

// ProgramCatalog couples a program definition with its course list.
type ProgramCatalog struct {
	Program models.Program
	Courses []models.Course
}

// All returns every embedded program catalog.
func All() []ProgramCatalog {
	return []ProgramCatalog{Physiotherapy(), Nursing()}
}

// BySlug returns the embedded catalog for a program slug.
func BySlug(slug string) (ProgramCatalog, bool) {
	for _, pc := range All() {
		if pc.Program.Slug == slug {
			return pc, true
		}
	}
	return ProgramCatalog{}, false
}
