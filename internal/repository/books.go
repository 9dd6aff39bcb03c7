package repository

import (
	"context"
	"database/sql"

	"github.com/peter-evance/bookspace/backend/internal/domain"
)

// BookFilter narrows the catalog listing. Search matches title, isbn and
// author names; Tag is an exact tag-name filter.
type BookFilter struct {
	Search string
	Tag    string
}

func (f BookFilter) IsZero() bool {
	return f.Search == "" && f.Tag == ""
}

func (r *Repository) CreateBook(book *domain.Book) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO books (title, description, publication_date, isbn, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date_updated
	`

	args := []any{book.Title, book.Description, book.PublicationDate, book.ISBN, book.Price}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.DateUpdated); err != nil {
		return err
	}

	if err := r.replaceBookLinks(ctx, tx, book); err != nil {
		return err
	}

	// every book starts with an empty inventory row
	if _, err := tx.ExecContext(ctx, `INSERT INTO book_inventories (book_id, stock_quantity) VALUES ($1, 0)`, book.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) replaceBookLinks(ctx context.Context, tx *sql.Tx, book *domain.Book) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM book_authors WHERE book_id = $1`, book.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM book_tag_links WHERE book_id = $1`, book.ID); err != nil {
		return err
	}

	for _, authorID := range book.AuthorIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO book_authors (book_id, author_id) VALUES ($1, $2)`, book.ID, authorID); err != nil {
			return err
		}
	}
	for _, tagID := range book.TagIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO book_tag_links (book_id, tag_id) VALUES ($1, $2)`, book.ID, tagID); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) loadBookLinks(ctx context.Context, book *domain.Book) error {
	book.AuthorIDs = make([]int64, 0)
	book.TagIDs = make([]int64, 0)

	rows, err := r.dbpool.QueryContext(ctx, `SELECT author_id FROM book_authors WHERE book_id = $1 ORDER BY author_id`, book.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		book.AuthorIDs = append(book.AuthorIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.dbpool.QueryContext(ctx, `SELECT tag_id FROM book_tag_links WHERE book_id = $1 ORDER BY tag_id`, book.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		book.TagIDs = append(book.TagIDs, id)
	}

	return rows.Err()
}

func (r *Repository) GetBookByID(id int64) (*domain.Book, error) {
	query := `
		SELECT title, description, publication_date, isbn, price, date_updated
		FROM books WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	book := &domain.Book{
		ID: id,
	}
	dst := []any{&book.Title, &book.Description, &book.PublicationDate, &book.ISBN, &book.Price, &book.DateUpdated}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := r.loadBookLinks(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

func (r *Repository) GetAllBooks(filter BookFilter) ([]*domain.Book, error) {
	query := `
		SELECT DISTINCT b.id, b.title, b.description, b.publication_date, b.isbn, b.price, b.date_updated
		FROM books b
		LEFT JOIN book_authors ba ON ba.book_id = b.id
		LEFT JOIN authors a ON a.id = ba.author_id
		LEFT JOIN book_tag_links btl ON btl.book_id = b.id
		LEFT JOIN book_tags bt ON bt.id = btl.tag_id
		WHERE ($1 = ''
			OR b.title ILIKE '%' || $1 || '%'
			OR b.isbn ILIKE '%' || $1 || '%'
			OR a.first_name ILIKE '%' || $1 || '%'
			OR a.last_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR bt.name = $2)
		ORDER BY b.id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, filter.Search, filter.Tag)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		book := &domain.Book{}
		dst := []any{&book.ID, &book.Title, &book.Description, &book.PublicationDate, &book.ISBN, &book.Price, &book.DateUpdated}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, book := range books {
		if err := r.loadBookLinks(ctx, book); err != nil {
			return nil, err
		}
	}

	return books, nil
}

func (r *Repository) UpdateBook(book *domain.Book) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE books
		SET title = $1, description = $2, publication_date = $3, isbn = $4, price = $5, date_updated = now()
		WHERE id = $6
		RETURNING date_updated
	`

	args := []any{book.Title, book.Description, book.PublicationDate, book.ISBN, book.Price, book.ID}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&book.DateUpdated); err != nil {
		return err
	}

	if err := r.replaceBookLinks(ctx, tx, book); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) DeleteBook(id int64) error {
	query := `
		DELETE FROM books WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
