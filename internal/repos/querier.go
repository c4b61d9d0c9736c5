package repos

import "github.com/jmoiron/sqlx"

// Querier is the handle repos accept for statements that must be able to run
// either on the pool or inside an explicit transaction. Both *sqlx.DB and
// *sqlx.Tx satisfy it, so the order workflow can pass its Tx through the same
// methods the handlers use directly.
type Querier interface {
	sqlx.Ext
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
}
