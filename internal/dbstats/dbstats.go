// Package dbstats provides best-effort database health and summary reporting.
package dbstats

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/walletcore/billetera/pkg/dbpkg"
)

// CoreTables are the tables the wallet cannot operate without.
var CoreTables = []string{"users", "accounts", "transactions"}

// Reporter reports database health and per-table statistics.
type Reporter struct {
	db dbpkg.SQLInterface
}

// New returns a Reporter over the given database.
func New(db dbpkg.SQLInterface) *Reporter {
	return &Reporter{db: db}
}

// CheckHealth reports whether all core tables are accessible. It never
// returns an error; inaccessible tables are logged and reported as unhealthy.
func (r *Reporter) CheckHealth(ctx context.Context) bool {
	l := zerolog.Ctx(ctx)

	healthy := true

	for _, table := range CoreTables {
		if _, err := r.countRecords(ctx, table); err != nil {
			l.Error().Err(err).Str("table", table).Msg("table not accessible")
			healthy = false
		}
	}

	return healthy
}

// Stats returns the record count per core table. A count of -1 marks a table
// that could not be read.
func (r *Reporter) Stats(ctx context.Context) map[string]int {
	l := zerolog.Ctx(ctx)

	stats := make(map[string]int, len(CoreTables))

	for _, table := range CoreTables {
		n, err := r.countRecords(ctx, table)
		if err != nil {
			l.Error().Err(err).Str("table", table).Msg("cannot count records")
			n = -1
		}

		stats[table] = n
	}

	return stats
}

// Table names come from the fixed CoreTables list, never from input.
func (r *Reporter) countRecords(ctx context.Context, table string) (int, error) {
	var n int

	row := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
