package repository

import (
	"database/sql"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func (r *Repository) CreateBookImage(image *domain.BookImage) error {
	query := `
		INSERT INTO book_images (book_id, cover_image, thumbnail)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{image.BookID, image.CoverImage, nullableString(image.Thumbnail)}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&image.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetBookImageByID(id int64) (*domain.BookImage, error) {
	query := `
		SELECT book_id, cover_image, thumbnail FROM book_images WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	image := &domain.BookImage{
		ID: id,
	}
	var thumbnail sql.NullString
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&image.BookID, &image.CoverImage, &thumbnail); err != nil {
		return nil, err
	}
	image.Thumbnail = thumbnail.String

	return image, nil
}

func (r *Repository) GetBookImagesByBookID(bookID int64) ([]*domain.BookImage, error) {
	query := `
		SELECT id, cover_image, thumbnail FROM book_images WHERE book_id = $1 ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]*domain.BookImage, 0)
	for rows.Next() {
		image := &domain.BookImage{
			BookID: bookID,
		}
		var thumbnail sql.NullString
		if err := rows.Scan(&image.ID, &image.CoverImage, &thumbnail); err != nil {
			return nil, err
		}
		image.Thumbnail = thumbnail.String
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}

func (r *Repository) UpdateBookImage(image *domain.BookImage) error {
	query := `
		UPDATE book_images
		SET book_id = $1, cover_image = $2, thumbnail = $3
		WHERE id = $4
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{image.BookID, image.CoverImage, nullableString(image.Thumbnail), image.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&image.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteBookImage(id int64) error {
	query := `
		DELETE FROM book_images WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
