package pgconv

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time.UTC()
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DayRange returns [start of t's UTC day, start of the next day).
func DayRange(t time.Time) (pgtype.Timestamptz, pgtype.Timestamptz) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return TimeToPgtype(start), TimeToPgtype(start.AddDate(0, 0, 1))
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
