package db

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Pool *pgxpool.Pool
}

// PublicSchema holds the live transfer rules; other schemas are archived
// snapshots.
const PublicSchema = "public"
