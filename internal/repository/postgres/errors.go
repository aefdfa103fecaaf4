package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/vedran77/missive/internal/repository"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
)

// mapError translates constraint violations into repository sentinels.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case sqlStateUniqueViolation:
		return errors.WithMessage(repository.ErrUniqueViolation, pgErr.ConstraintName)
	case sqlStateForeignKeyViolation:
		return errors.WithMessage(repository.ErrForeignKeyViolation, pgErr.ConstraintName)
	case sqlStateCheckViolation:
		return errors.WithMessage(repository.ErrCheckViolation, pgErr.ConstraintName)
	}
	return err
}
