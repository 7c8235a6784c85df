package domain

// Customer is a sales lead owned by exactly one user. The URL is display
// data only; it is never fetched by the customer path.
type Customer struct {
	ID         string `db:"id" json:"id"`
	OwnerEmail string `db:"owner_email" json:"owner_email"`
	Name       string `db:"name" json:"name"`
	URL        string `db:"url" json:"url"`
	CreatedAt  string `db:"created_at" json:"created_at,omitempty"`
}
