package schema

// Generated client lives in internal/repo (package repo), not committed.
//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ../repo --feature sql/upsert,sql/execquery ./
