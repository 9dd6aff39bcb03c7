package repository

import (
	"github.com/peter-evance/bookspace/backend/internal/domain"
)

// AuthorFilter narrows the author listing; both name filters are substring
// matches. OrderBy must be one of the whitelisted columns checked by the
// handler.
type AuthorFilter struct {
	FirstName string
	LastName  string
	OrderBy   string
}

func (f AuthorFilter) IsZero() bool {
	return f.FirstName == "" && f.LastName == ""
}

func (r *Repository) CreateAuthor(author *domain.Author) error {
	query := `
		INSERT INTO authors (first_name, last_name, bio)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{author.FirstName, author.LastName, author.Bio}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&author.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAuthorByID(id int64) (*domain.Author, error) {
	query := `
		SELECT first_name, last_name, bio FROM authors WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	author := &domain.Author{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&author.FirstName, &author.LastName, &author.Bio); err != nil {
		return nil, err
	}

	return author, nil
}

func (r *Repository) GetAllAuthors(filter AuthorFilter) ([]*domain.Author, error) {
	orderBy := "last_name, first_name"
	switch filter.OrderBy {
	case "first_name":
		orderBy = "first_name, last_name"
	case "last_name":
	}

	query := `
		SELECT id, first_name, last_name, bio
		FROM authors
		WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR last_name ILIKE '%' || $2 || '%')
		ORDER BY ` + orderBy

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, filter.FirstName, filter.LastName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := make([]*domain.Author, 0)
	for rows.Next() {
		author := &domain.Author{}
		if err := rows.Scan(&author.ID, &author.FirstName, &author.LastName, &author.Bio); err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return authors, nil
}

func (r *Repository) UpdateAuthor(author *domain.Author) error {
	query := `
		UPDATE authors
		SET first_name = $1, last_name = $2, bio = $3
		WHERE id = $4
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{author.FirstName, author.LastName, author.Bio, author.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&author.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAuthor(id int64) error {
	query := `
		DELETE FROM authors WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
