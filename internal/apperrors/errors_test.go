package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/blog-platform-api/internal/apperrors"
)

func TestKindHTTPStatus(t *testing.T) {
	cases := []struct {
		kind   apperrors.Kind
		status int
	}{
		{apperrors.KindValidation, http.StatusBadRequest},
		{apperrors.KindUnauthenticated, http.StatusUnauthorized},
		{apperrors.KindForbidden, http.StatusForbidden},
		{apperrors.KindNotFound, http.StatusNotFound},
		{apperrors.KindConflict, http.StatusConflict},
		{apperrors.KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.kind.HTTPStatus(); got != tc.status {
			t.Errorf("Kind %d: expected status %d, got %d", tc.kind, tc.status, got)
		}
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	err := apperrors.NotFound("article not found")
	wrapped := fmt.Errorf("service: %w", err)

	if kind := apperrors.KindOf(wrapped); kind != apperrors.KindNotFound {
		t.Errorf("Expected KindNotFound, got %d", kind)
	}
}

func TestKindOf_PlainError(t *testing.T) {
	err := errors.New("connection refused")

	if kind := apperrors.KindOf(err); kind != apperrors.KindInternal {
		t.Errorf("Expected KindInternal for plain error, got %d", kind)
	}
}

func TestMessageOf_HidesInternalDetail(t *testing.T) {
	err := apperrors.Internal(errors.New("pq: connection reset by peer"))

	msg := apperrors.MessageOf(err)
	if msg != "internal server error" {
		t.Errorf("Expected generic message, got %q", msg)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := apperrors.Wrap(apperrors.KindNotFound, "article not found", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected wrapped error to match cause via errors.Is")
	}
}
