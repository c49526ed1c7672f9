package database

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema delegates to the underlying handle so callers holding only a
// Repository can run it before their first read.
func (r *Repository) EnsureSchema() error {
	return r.db.EnsureSchema()
}
