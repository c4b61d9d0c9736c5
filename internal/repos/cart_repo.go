package repos

import (
	"database/sql"
	"errors"

	"candleworks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// Get fetches one cart item scoped to its owner; another user's item id is a
// plain NotFound, never a hint that the row exists.
func (r *CartRepo) Get(userID, itemID string) (domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.Get(&it, `
	  SELECT id, user_id, product_id, quantity, created_at
	  FROM cart_items WHERE id = ? AND user_id = ?
	`, itemID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return it, domain.ErrNotFound
	}
	return it, err
}

func (r *CartRepo) ByUserProduct(userID, productID string) (domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.Get(&it, `
	  SELECT id, user_id, product_id, quantity, created_at
	  FROM cart_items WHERE user_id = ? AND product_id = ?
	`, userID, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return it, domain.ErrNotFound
	}
	return it, err
}

func (r *CartRepo) Insert(it domain.CartItem) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(id,user_id,product_id,quantity) VALUES(?,?,?,?)
	`, it.ID, it.UserID, it.ProductID, it.Quantity)
	return err
}

func (r *CartRepo) SetQuantity(itemID string, qty int) error {
	_, err := r.db.Exec(`UPDATE cart_items SET quantity = ? WHERE id = ?`, qty, itemID)
	return err
}

func (r *CartRepo) Delete(userID, itemID string) error {
	res, err := r.db.Exec(`DELETE FROM cart_items WHERE id = ? AND user_id = ?`, itemID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Lines returns the user's cart joined with live product data, insertion order.
func (r *CartRepo) Lines(q Querier, userID string) ([]domain.CartLine, error) {
	out := []domain.CartLine{}
	err := q.Select(&out, `
	  SELECT ci.id, ci.product_id, p.name AS product_name, ci.quantity,
	         p.price, p.stock,
	         CASE WHEN p.image_url IS NULL OR p.image_url = '' THEN '`+DefaultImageURL+`' ELSE p.image_url END AS image_url,
	         (ci.quantity * p.price) AS subtotal
	  FROM cart_items ci JOIN products p ON p.id = ci.product_id
	  WHERE ci.user_id = ?
	  ORDER BY ci.rowid
	`, userID)
	return out, err
}

// Clear drops every line for the user. Unconditional; clearing an empty cart
// is not an error.
func (r *CartRepo) Clear(q Querier, userID string) error {
	_, err := q.Exec(`DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}
