package repos

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"salesapp/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO users(id,email,first_name,last_name,password_hash,remarks)
	                                 VALUES(?,?,?,?,?,?)`,
		u.ID, u.Email, u.FirstName, u.LastName, u.Hash, u.Remarks)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.GetContext(ctx, &u, `SELECT id,email,first_name,last_name,password_hash,remarks
	                                 FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UpdateRemarks(ctx context.Context, email, remarks string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET remarks=?,updated_at=CURRENT_TIMESTAMP
	                                   WHERE LOWER(email)=LOWER(?)`, remarks, email)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) BindSession(ctx context.Context, sid, email string) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO sessions(id,user_email,last_seen)
	                                 VALUES(?,?,CURRENT_TIMESTAMP)
	                                 ON CONFLICT(id) DO UPDATE SET user_email=excluded.user_email,last_seen=CURRENT_TIMESTAMP`,
		sid, email)
	return err
}

func (r *UserRepo) SessionUser(ctx context.Context, sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.GetContext(ctx, &u, `
      SELECT u.id,u.email,u.first_name,u.last_name,u.password_hash,u.remarks
      FROM sessions s
      JOIN users u ON u.email=s.user_email
      WHERE s.id=?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(ctx context.Context, sid string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE sessions SET user_email=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
