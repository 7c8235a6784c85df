package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"salesapp/internal/domain"
)

type CustomerRepo struct{ DB *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO customers(id,owner_email,name,url) VALUES(?,?,?,?)`,
		c.ID, c.OwnerEmail, c.Name, c.URL)
	return err
}

// ListByOwner returns the owner's leads, oldest first. No rows is an empty
// slice, not an error.
func (r *CustomerRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Customer, error) {
	out := []domain.Customer{}
	err := r.DB.SelectContext(ctx, &out, `SELECT id,owner_email,name,url,created_at
	                                      FROM customers WHERE owner_email=? ORDER BY created_at,id`, ownerEmail)
	if err != nil {
		return nil, err
	}
	return out, nil
}
