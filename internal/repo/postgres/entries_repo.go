package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clockhouse/timesheet/internal/domain/entry"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EntriesRepo is the optional durable store, selected when DB_URL is set.
// It honors the same contract as the in-memory repo.
type EntriesRepo struct {
	pool *pgxpool.Pool
}

func NewEntriesRepo(pool *pgxpool.Pool) *EntriesRepo {
	return &EntriesRepo{
		pool: pool,
	}
}

const entryColumns = `id, date, project_id, project_name, work_type, description, hours, created_at, updated_at`

func (r *EntriesRepo) List(ctx context.Context, filter entry.ListFilter) ([]entry.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries`

	var conds []string
	var args []interface{}

	argsPosition := 1

	if filter.From != "" {
		conds = append(conds, fmt.Sprintf("date >= $%d", argsPosition))
		args = append(args, filter.From)
		argsPosition++
	}

	if filter.To != "" {
		conds = append(conds, fmt.Sprintf("date <= $%d", argsPosition))
		args = append(args, filter.To)
		argsPosition++
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	// insertion order, matching the in-memory store
	query += " ORDER BY created_at ASC, id ASC"

	rows, err := r.pool.Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	out := make([]entry.Entry, 0)

	for rows.Next() {
		var e entry.Entry

		err = rows.Scan(&e.ID, &e.Date, &e.ProjectID, &e.ProjectName, &e.WorkType, &e.Description, &e.Hours, &e.CreatedAt, &e.UpdatedAt)

		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	err = rows.Err()

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *EntriesRepo) Create(ctx context.Context, req entry.CreateEntryRequest) (entry.Entry, error) {
	err := req.Validate()

	if err != nil {
		return entry.Entry{}, err
	}

	e := entry.NewFromCreateRequest(req)

	_, err = r.pool.Exec(ctx,
		`INSERT INTO timesheet_entries (`+entryColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.Date, e.ProjectID, e.ProjectName, e.WorkType, e.Description, e.Hours, e.CreatedAt, e.UpdatedAt,
	)

	if err != nil {
		return entry.Entry{}, err
	}

	return e, nil
}

func (r *EntriesRepo) Update(ctx context.Context, id string, req entry.UpdateEntryRequest) (entry.Entry, error) {
	err := req.Validate()

	if err != nil {
		return entry.Entry{}, err
	}

	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return entry.Entry{}, err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	var e entry.Entry

	err = tx.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM timesheet_entries WHERE id = $1 FOR UPDATE`, id,
	).Scan(&e.ID, &e.Date, &e.ProjectID, &e.ProjectName, &e.WorkType, &e.Description, &e.Hours, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry.Entry{}, entry.ErrNotFound
		}

		return entry.Entry{}, err
	}

	updated := e.ApplyUpdate(req)

	_, err = tx.Exec(ctx,
		`UPDATE timesheet_entries
			SET date = $2,
					project_id = $3,
					project_name = $4,
					work_type = $5,
					description = $6,
					hours = $7,
					updated_at = $8
		WHERE id = $1`,
		updated.ID, updated.Date, updated.ProjectID, updated.ProjectName, updated.WorkType, updated.Description, updated.Hours, updated.UpdatedAt,
	)

	if err != nil {
		return entry.Entry{}, err
	}

	err = tx.Commit(ctx)

	if err != nil {
		return entry.Entry{}, err
	}

	return updated, nil
}

func (r *EntriesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM timesheet_entries WHERE id = $1`, id)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entry.ErrNotFound
	}

	return nil
}
