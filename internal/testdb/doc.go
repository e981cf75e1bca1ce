// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests call GetTestDBWithT, which skips when DATABASE_URL is unset and
// otherwise returns a migrated connection. WithTx runs the test body in a
// transaction that is always rolled back, so tests can share one database
// and still run with t.Parallel():
//
//	func TestTaskStore(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        tasks := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
