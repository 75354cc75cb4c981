package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/yungbote/restaurants-backend/internal/domain/aggregates"
)

func TestFromError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", aggregates.NewError(aggregates.CodeValidation, "op", "bad", nil), http.StatusBadRequest, "validation"},
		{"not found", fmt.Errorf("update: %w", aggregates.NotFound("Restaurant.Update", "Restaurant", 9)), http.StatusNotFound, "not_found"},
		{"conflict", aggregates.NewError(aggregates.CodeConflict, "op", "dup", nil), http.StatusInternalServerError, "conflict"},
		{"precondition", aggregates.NewError(aggregates.CodePreconditionFailed, "op", "gone", nil), http.StatusInternalServerError, "precondition_failed"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "internal"},
		{"explicit", New(http.StatusBadRequest, "invalid_id", errors.New("id")), http.StatusBadRequest, "invalid_id"},
	}
	for _, tc := range cases {
		got := FromError(tc.err)
		if got.Status != tc.status || got.Code != tc.code {
			t.Fatalf("%s: want=%d/%s got=%d/%s", tc.name, tc.status, tc.code, got.Status, got.Code)
		}
	}
	if FromError(nil) != nil {
		t.Fatalf("nil: want nil")
	}
}
