package postgres

import (
	"context"
	"fmt"

	"github.com/dimerman/thrivemycareer/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	selectCompaniesQuery = `SELECT id, name, top_up, email_status FROM companies ORDER BY seq`
	selectUsersQuery     = `
SELECT id, first_name, last_name, email, email_status, active_status, tokens, company_id
FROM users
ORDER BY seq`
)

// CompanyRecords returns company rows as raw records in insertion order.
func (p *Postgres) CompanyRecords(ctx context.Context) ([]entities.Record, error) {
	return p.records(ctx, "companies", selectCompaniesQuery)
}

// UserRecords returns user rows as raw records in insertion order.
func (p *Postgres) UserRecords(ctx context.Context) ([]entities.Record, error) {
	return p.records(ctx, "users", selectUsersQuery)
}

func (p *Postgres) records(ctx context.Context, table, query string) ([]entities.Record, error) {
	if p.db == nil {
		return nil, fmt.Errorf("%w: postgres source not started", entities.ErrSource)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.log.Errorw("failed to query records", "error", err, "table", table)
		return nil, fmt.Errorf("%w: query %s: %w", entities.ErrSource, table, err)
	}
	defer rows.Close()

	records := make([]entities.Record, 0)
	for rows.Next() {
		r, err := rowRecord(rows)
		if err != nil {
			p.log.Errorw("failed to scan record", "error", err, "table", table)
			return nil, fmt.Errorf("%w: scan %s: %w", entities.ErrSource, table, err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate records", "error", err, "table", table)
		return nil, fmt.Errorf("%w: iterate %s: %w", entities.ErrSource, table, err)
	}

	p.log.Debugw("records loaded", "table", table, "count", len(records))
	return records, nil
}

// rowRecord maps a row by column name. NULL columns are left out so they count as missing.
func rowRecord(rows pgx.Rows) (entities.Record, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, err
	}

	fields := rows.FieldDescriptions()
	r := make(entities.Record, len(fields))
	for i, fd := range fields {
		v := values[i]
		if v == nil {
			continue
		}
		if n, ok := v.(pgtype.Numeric); ok {
			v = numericValue(n)
		}
		r[fd.Name] = v
	}
	return r, nil
}

// numericValue converts finite numerics to decimal.Decimal; NaN and infinities are
// returned unchanged and later rejected as non-numeric.
func numericValue(n pgtype.Numeric) any {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return n
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
