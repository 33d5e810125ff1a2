package curriculum

import (
	"fmt"
	"sort"

	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

// Graph is a read-only view over one program's catalog: the course index
// plus the reverse-prerequisite (unlocks) index. Only one-hop lookups are
// needed by the engine, so plain maps replace a general graph structure.
// A Graph is safe to share across requests once built.
type Graph struct {
	courses map[string]*models.Course
	order   []string
	unlocks map[string][]string
}

// NewGraph builds the curriculum graph for a program from its course list.
// It fails with apperrors.ErrCatalogIntegrity when a prerequisite or
// corequisite references a code outside the program, when a course
// references itself, or when a corequisite relation is not symmetric.
func NewGraph(courses []models.Course) (*Graph, error) {
	g := &Graph{
		courses: make(map[string]*models.Course, len(courses)),
		order:   make([]string, 0, len(courses)),
		unlocks: make(map[string][]string),
	}

	for i := range courses {
		c := &courses[i]
		if _, dup := g.courses[c.Code]; dup {
			return nil, apperrors.NewCatalogIntegrityError(
				fmt.Sprintf("duplicate course code %q", c.Code))
		}
		g.courses[c.Code] = c
		g.order = append(g.order, c.Code)
	}

	for _, code := range g.order {
		c := g.courses[code]
		for _, prereq := range c.Prerequisites {
			if prereq == c.Code {
				return nil, apperrors.NewCatalogIntegrityError(
					fmt.Sprintf("course %q lists itself as prerequisite", c.Code))
			}
			if _, ok := g.courses[prereq]; !ok {
				return nil, apperrors.NewCatalogIntegrityError(
					fmt.Sprintf("course %q references unknown prerequisite %q", c.Code, prereq))
			}
			g.unlocks[prereq] = append(g.unlocks[prereq], c.Code)
		}
		for _, coreq := range c.Corequisites {
			if coreq == c.Code {
				return nil, apperrors.NewCatalogIntegrityError(
					fmt.Sprintf("course %q lists itself as corequisite", c.Code))
			}
			other, ok := g.courses[coreq]
			if !ok {
				return nil, apperrors.NewCatalogIntegrityError(
					fmt.Sprintf("course %q references unknown corequisite %q", c.Code, coreq))
			}
			if !contains(other.Corequisites, c.Code) {
				return nil, apperrors.NewCatalogIntegrityError(
					fmt.Sprintf("corequisite relation %q -> %q is not symmetric", c.Code, coreq))
			}
		}
	}

	// Catalog order: native semester ascending, code ascending. Selection
	// and bundle enumeration rely on this being deterministic.
	sort.SliceStable(g.order, func(i, j int) bool {
		a, b := g.courses[g.order[i]], g.courses[g.order[j]]
		if a.Semester != b.Semester {
			return a.Semester < b.Semester
		}
		return a.Code < b.Code
	})

	return g, nil
}

// Course returns the course for a code, if present.
func (g *Graph) Course(code string) (*models.Course, bool) {
	c, ok := g.courses[code]
	return c, ok
}

// Contains reports whether the code belongs to the program's catalog.
func (g *Graph) Contains(code string) bool {
	_, ok := g.courses[code]
	return ok
}

// Unlocks returns the codes of courses that list the given code as a direct
// prerequisite.
func (g *Graph) Unlocks(code string) []string {
	return g.unlocks[code]
}

// Codes returns all course codes in catalog order (semester asc, code asc).
func (g *Graph) Codes() []string {
	return g.order
}

// Len returns the number of courses in the graph.
func (g *Graph) Len() int {
	return len(g.courses)
}

// CreditsOf sums the credit weights of the given approved codes. Codes not
// in the catalog contribute nothing.
func (g *Graph) CreditsOf(codes map[string]bool) int {
	total := 0
	for code, ok := range codes {
		if !ok {
			continue
		}
		if c, found := g.courses[code]; found {
			total += c.Credits
		}
	}
	return total
}

func contains(list []string, code string) bool {
	for _, v := range list {
		if v == code {
			return true
		}
	}
	return false
}
