package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"law-agenda-api/internal/model"
)

func (s *Store) CreateSchedule(ctx context.Context, sc *model.Schedule) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO schedules (lawyer, client, process_number, online, date, time, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING id, created_at`,
		sc.Lawyer, sc.Client, sc.ProcessNumber, sc.Online, sc.Date, sc.Time, sc.Notes,
	).Scan(&sc.ID, &sc.CreatedAt)
}

func (s *Store) ListSchedules(ctx context.Context) ([]model.Schedule, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, lawyer, client, process_number, online, date, time, notes, created_at
		 FROM schedules ORDER BY date, time, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

func (s *Store) GetSchedule(ctx context.Context, id int64) (*model.Schedule, error) {
	sc := &model.Schedule{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, lawyer, client, process_number, online, date, time, notes, created_at
		 FROM schedules WHERE id = $1`, id,
	).Scan(&sc.ID, &sc.Lawyer, &sc.Client, &sc.ProcessNumber, &sc.Online,
		&sc.Date, &sc.Time, &sc.Notes, &sc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// ListSchedulesByDate matches the stored date string exactly.
func (s *Store) ListSchedulesByDate(ctx context.Context, date string) ([]model.Schedule, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, lawyer, client, process_number, online, date, time, notes, created_at
		 FROM schedules WHERE date = $1 ORDER BY time, id`, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

// ScheduleDatesInMonth returns the distinct dates of one month that have at
// least one appointment, keyed for the calendar projection.
func (s *Store) ScheduleDatesInMonth(ctx context.Context, year int, month time.Month) (map[string]bool, error) {
	pattern := fmt.Sprintf("%04d-%02d-%%", year, int(month))
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT date FROM schedules WHERE date LIKE $1`, pattern,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out[d] = true
	}
	return out, rows.Err()
}

// SetScheduleOnline is the only post-creation mutation the registry allows.
func (s *Store) SetScheduleOnline(ctx context.Context, id int64, online bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE schedules SET online = $1 WHERE id = $2`, online, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteSchedule(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSchedules(rows pgx.Rows) ([]model.Schedule, error) {
	out := []model.Schedule{}
	for rows.Next() {
		var sc model.Schedule
		if err := rows.Scan(
			&sc.ID, &sc.Lawyer, &sc.Client, &sc.ProcessNumber, &sc.Online,
			&sc.Date, &sc.Time, &sc.Notes, &sc.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
