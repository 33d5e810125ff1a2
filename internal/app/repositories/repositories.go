package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories is the container for all repository instances
type Repositories struct {
	CatalogRepository *CatalogRepository
}

// NewRepositories creates all repositories with the shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CatalogRepository: NewCatalogRepository(db),
	}
}
