package repository

import (
	"github.com/peter-evance/bookspace/backend/internal/domain"
)

func (r *Repository) CreateUser(user *domain.User) error {
	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, email, phone_number, sex,
			is_bookspace_owner, is_bookspace_manager, is_assistant_bookspace_manager, is_bookspace_worker)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.Sex,
		user.IsOwner, user.IsManager, user.IsAssistantManager, user.IsWorker,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	query := `
		SELECT username, password_hash, first_name, last_name, email, phone_number, sex,
			is_bookspace_owner, is_bookspace_manager, is_assistant_bookspace_manager, is_bookspace_worker,
			created_at, version
		FROM users WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	user := &domain.User{
		ID: id,
	}

	dst := []any{
		&user.Username, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Email, &user.PhoneNumber, &user.Sex,
		&user.IsOwner, &user.IsManager, &user.IsAssistantManager, &user.IsWorker,
		&user.CreatedAt, &user.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByUsername(username string) (*domain.User, error) {
	query := `
		SELECT id, password_hash, first_name, last_name, email, phone_number, sex,
			is_bookspace_owner, is_bookspace_manager, is_assistant_bookspace_manager, is_bookspace_worker,
			created_at, version
		FROM users WHERE username = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	user := &domain.User{
		Username: username,
	}

	dst := []any{
		&user.ID, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Email, &user.PhoneNumber, &user.Sex,
		&user.IsOwner, &user.IsManager, &user.IsAssistantManager, &user.IsWorker,
		&user.CreatedAt, &user.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	query := `
		SELECT id, username, password_hash, first_name, last_name, email, phone_number, sex,
			is_bookspace_owner, is_bookspace_manager, is_assistant_bookspace_manager, is_bookspace_worker,
			created_at, version
		FROM users
		ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		dst := []any{
			&user.ID, &user.Username, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Email, &user.PhoneNumber, &user.Sex,
			&user.IsOwner, &user.IsManager, &user.IsAssistantManager, &user.IsWorker,
			&user.CreatedAt, &user.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) UpdateUser(user *domain.User) error {
	query := `
		UPDATE users
		SET
			password_hash = $1,
			email = $2,
			phone_number = $3,
			is_bookspace_owner = $4,
			is_bookspace_manager = $5,
			is_assistant_bookspace_manager = $6,
			is_bookspace_worker = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING username, first_name, last_name, sex, created_at, version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{
		user.PasswordHash, user.Email, user.PhoneNumber,
		user.IsOwner, user.IsManager, user.IsAssistantManager, user.IsWorker,
		user.ID, user.Version,
	}
	dst := []any{&user.Username, &user.FirstName, &user.LastName, &user.Sex, &user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteUser(id int64) error {
	query := `
		DELETE FROM users WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UsernameExists(username string) (bool, error) {
	exists := false

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
