package database

import (
	"database/sql"
	"registro/models"
)

// ==================== RECORD OPERATIONS ====================

// Insert stores a new record and returns it with its assigned id.
// Text is not validated here; callers reject blank input.
func (r *Repository) Insert(text string) (models.Record, error) {
	res, err := r.db.Exec(`INSERT INTO Registro (nombre) VALUES (?)`, text)
	if err != nil {
		return models.Record{}, writeError("insert", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Record{}, writeError("insert", err)
	}

	return models.Record{ID: id, Text: text}, nil
}

// Update overwrites the text of the record with the given id.
// A missing id is not an error: nothing is changed.
func (r *Repository) Update(id int64, text string) error {
	_, err := r.db.Exec(`UPDATE Registro SET nombre = ? WHERE id = ?`, text, id)
	if err != nil {
		return writeError("update", err)
	}
	return nil
}

// Delete removes the record with the given id, if any.
func (r *Repository) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM Registro WHERE id = ?`, id)
	if err != nil {
		return writeError("delete", err)
	}
	return nil
}

// Clear removes every record.
func (r *Repository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM Registro`)
	if err != nil {
		return writeError("clear", err)
	}
	return nil
}

// ListAll returns every record in id order.
func (r *Repository) ListAll() ([]models.Record, error) {
	rows, err := r.db.Query(`
		SELECT id, nombre
		FROM Registro
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, readError("list", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	records := make([]models.Record, 0)
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.ID, &rec.Text); err != nil {
			return nil, readError("list", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("list", err)
	}
	return records, nil
}

// Get retrieves a single record, or nil when the id does not exist.
func (r *Repository) Get(id int64) (*models.Record, error) {
	var rec models.Record
	err := r.db.QueryRow(`
		SELECT id, nombre
		FROM Registro
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Text)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, readError("get", err)
	}

	return &rec, nil
}
