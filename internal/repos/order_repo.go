package repos

import (
	"database/sql"
	"errors"

	"candleworks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts the order header. Runs on the caller's Querier so the order
// workflow can keep it inside its transaction.
func (r *OrderRepo) Create(q Querier, o domain.Order) error {
	_, err := q.Exec(`
	  INSERT INTO orders(id, user_id, total_amount, status, payment_method, payment_status, shipping_address, phone)
	  VALUES(?,?,?,?,?,?,?,?)
	`, o.ID, o.UserID, o.TotalAmount, o.Status, o.PaymentMethod, o.PaymentStatus, o.ShippingAddress, o.Phone)
	return err
}

func (r *OrderRepo) InsertItem(q Querier, it domain.OrderItem) error {
	_, err := q.Exec(`
	  INSERT INTO order_items(order_id, product_id, quantity, price)
	  VALUES(?,?,?,?)
	`, it.OrderID, it.ProductID, it.Quantity, it.Price)
	return err
}

// Get returns an order only if it belongs to the given user.
func (r *OrderRepo) Get(userID, orderID string) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `
	  SELECT id, user_id, total_amount, status, payment_method, payment_status,
	         COALESCE(shipping_address,'') AS shipping_address, COALESCE(phone,'') AS phone, created_at
	  FROM orders WHERE id = ? AND user_id = ?
	`, orderID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return o, domain.ErrNotFound
	}
	return o, err
}

func (r *OrderRepo) Items(orderID string) ([]domain.OrderItem, error) {
	out := []domain.OrderItem{}
	err := r.db.Select(&out, `
	  SELECT order_id, product_id, quantity, price
	  FROM order_items WHERE order_id = ?
	`, orderID)
	return out, err
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, total_amount, status, payment_method, payment_status,
	         COALESCE(shipping_address,'') AS shipping_address, COALESCE(phone,'') AS phone, created_at
	  FROM orders WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, total_amount, status, payment_method, payment_status,
	         COALESCE(shipping_address,'') AS shipping_address, COALESCE(phone,'') AS phone, created_at
	  FROM orders
	  ORDER BY datetime(created_at) DESC
	`)
	return out, err
}

// UpdateStatus overwrites the status string as-is; there is no transition
// table to enforce.
func (r *OrderRepo) UpdateStatus(orderID, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
