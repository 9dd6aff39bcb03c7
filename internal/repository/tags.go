package repository

import (
	"github.com/peter-evance/bookspace/backend/internal/domain"
)

type BookTagFilter struct {
	Name string
}

func (f BookTagFilter) IsZero() bool {
	return f.Name == ""
}

func (r *Repository) CreateBookTag(tag *domain.BookTag) error {
	query := `
		INSERT INTO book_tags (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, tag.Name, tag.Description).Scan(&tag.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetBookTagByID(id int64) (*domain.BookTag, error) {
	query := `
		SELECT name, description FROM book_tags WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	tag := &domain.BookTag{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&tag.Name, &tag.Description); err != nil {
		return nil, err
	}

	return tag, nil
}

func (r *Repository) GetAllBookTags(filter BookTagFilter) ([]*domain.BookTag, error) {
	query := `
		SELECT id, name, description
		FROM book_tags
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, filter.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]*domain.BookTag, 0)
	for rows.Next() {
		tag := &domain.BookTag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Description); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

func (r *Repository) UpdateBookTag(tag *domain.BookTag) error {
	query := `
		UPDATE book_tags
		SET name = $1, description = $2
		WHERE id = $3
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, tag.Name, tag.Description, tag.ID).Scan(&tag.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteBookTag(id int64) error {
	query := `
		DELETE FROM book_tags WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
