package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"candleworks/internal/domain"
	"candleworks/internal/repos"
	"candleworks/internal/services"
)

func newMarketingEnv(t *testing.T) *services.MarketingService {
	t.Helper()
	db := memdbAll(t)
	if _, err := db.Exec(`
	  CREATE TABLE newsletter(id TEXT PRIMARY KEY, email TEXT UNIQUE, subscribed_at TEXT DEFAULT CURRENT_TIMESTAMP);
	  CREATE TABLE contact_messages(id TEXT PRIMARY KEY, name TEXT, email TEXT, mobile TEXT, message TEXT,
	    created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	`); err != nil {
		t.Fatal(err)
	}
	return services.NewMarketingService(repos.NewMarketingRepo(db))
}

func TestNewsletterSubscribe_DuplicateConflicts(t *testing.T) {
	svc := newMarketingEnv(t)
	require.NoError(t, svc.Subscribe("fan@example.com"))
	require.ErrorIs(t, svc.Subscribe("fan@example.com"), domain.ErrConflict)
}

func TestContactMessages_AdminOnly(t *testing.T) {
	svc := newMarketingEnv(t)
	require.NoError(t, svc.Contact(domain.ContactMessage{Name: "Maya", Email: "maya@example.com", Message: "hi"}))

	shopper := &domain.User{ID: "u1"}
	_, err := svc.ListMessages(shopper)
	require.ErrorIs(t, err, domain.ErrForbidden)
	require.ErrorIs(t, svc.DeleteMessage(shopper, "any"), domain.ErrForbidden)

	admin := &domain.User{ID: "adm", IsAdmin: true}
	msgs, err := svc.ListMessages(admin)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	require.NoError(t, svc.DeleteMessage(admin, msgs[0].ID))
	require.ErrorIs(t, svc.DeleteMessage(admin, msgs[0].ID), domain.ErrNotFound)
}
