package repos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
)

// MapError maps store failures into the API error taxonomy. Errors that are
// already *apierr.Error pass through untouched.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apierr.As(err); ok {
		return err
	}
	wrapped := fmt.Errorf("%s: %w", op, err)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierr.New(http.StatusNotFound, "not_found", wrapped)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apierr.Upstream("canceled", wrapped)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505": // unique_violation
			return &apierr.Error{Status: http.StatusBadRequest, Code: "conflict", Kind: apierr.KindConflict, Err: wrapped}
		case "23503": // foreign_key_violation
			return &apierr.Error{Status: http.StatusBadRequest, Code: "precondition_failed", Kind: apierr.KindConflict, Err: wrapped}
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint failed"):
		return &apierr.Error{Status: http.StatusBadRequest, Code: "conflict", Kind: apierr.KindConflict, Err: wrapped}
	default:
		return apierr.Upstream("internal", wrapped)
	}
}

// IsNotFound reports whether err is a missing-row error, mapped or not.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || apierr.IsKind(err, apierr.KindNotFound)
}
