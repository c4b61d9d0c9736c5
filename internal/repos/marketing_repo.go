package repos

import (
	"database/sql"
	"errors"

	"candleworks/internal/domain"

	"github.com/jmoiron/sqlx"
)

// MarketingRepo covers the small side tables: newsletter signups and
// contact-form messages.
type MarketingRepo struct{ db *sqlx.DB }

func NewMarketingRepo(db *sqlx.DB) *MarketingRepo { return &MarketingRepo{db: db} }

func (r *MarketingRepo) SubscriberByEmail(email string) (domain.NewsletterSub, error) {
	var s domain.NewsletterSub
	err := r.db.Get(&s, `SELECT id, email, subscribed_at FROM newsletter WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return s, domain.ErrNotFound
	}
	return s, err
}

func (r *MarketingRepo) Subscribe(s domain.NewsletterSub) error {
	_, err := r.db.Exec(`INSERT INTO newsletter(id,email) VALUES(?,?)`, s.ID, s.Email)
	return err
}

func (r *MarketingRepo) InsertMessage(m domain.ContactMessage) error {
	_, err := r.db.Exec(`
	  INSERT INTO contact_messages(id,name,email,mobile,message) VALUES(?,?,?,?,?)
	`, m.ID, m.Name, m.Email, m.Mobile, m.Message)
	return err
}

func (r *MarketingRepo) ListMessages() ([]domain.ContactMessage, error) {
	out := []domain.ContactMessage{}
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(name,'') AS name, COALESCE(email,'') AS email,
	         COALESCE(mobile,'') AS mobile, COALESCE(message,'') AS message, created_at
	  FROM contact_messages
	  ORDER BY datetime(created_at) DESC
	`)
	return out, err
}

func (r *MarketingRepo) DeleteMessage(id string) error {
	res, err := r.db.Exec(`DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
