package repos

import (
	"database/sql"
	"errors"

	"candleworks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id, email, username, password_hash, COALESCE(full_name,'') AS full_name, COALESCE(phone,'') AS phone, is_admin, created_at`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE username=?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.DB.Exec(`
	  INSERT INTO users(id,email,username,password_hash,full_name,phone,is_admin)
	  VALUES(?,?,?,?,?,?,?)
	`, u.ID, u.Email, u.Username, u.Hash, u.FullName, u.Phone, u.IsAdmin)
	return err
}

// BindToken records an issued bearer token for the user.
func (r *UserRepo) BindToken(token, userID string) error {
	_, err := r.DB.Exec(`
	  INSERT INTO tokens(id,user_id,last_seen) VALUES(?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id, last_seen=CURRENT_TIMESTAMP
	`, token, userID)
	return err
}

// TokenUser resolves a bearer token to its user.
func (r *UserRepo) TokenUser(token string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT u.id, u.email, u.username, u.password_hash, COALESCE(u.full_name,'') AS full_name,
	         COALESCE(u.phone,'') AS phone, u.is_admin, u.created_at
	  FROM tokens t
	  JOIN users u ON u.id = t.user_id
	  WHERE t.id = ?
	`, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBadCreds
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) DeleteToken(token string) error {
	_, err := r.DB.Exec(`DELETE FROM tokens WHERE id = ?`, token)
	return err
}
