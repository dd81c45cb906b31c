// Package metadata provides the local key/value store that backs the auth
// core. Values are opaque byte slices; typed (JSON) access lives in package
// storage.
//
// Two implementations are provided:
//
//   - SQLiteRepository stores rows in the `metadata` table created by the
//     embedded migrations (see internal/database).
//   - InMemoryRepository keeps everything in a map; it is used by tests and
//     for throwaway sessions.
//
// Typical Usage
//
//	repo := metadata.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "AUTH_SESSION_V1", raw)
//	v, _ := repo.Get(ctx, "AUTH_SESSION_V1") // nil, nil if absent
package metadata
