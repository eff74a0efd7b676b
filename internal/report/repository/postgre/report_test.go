package postgre

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"visibility-srv/internal/report/repository"
	"visibility-srv/pkg/log"

	"github.com/lib/pq"
)

func TestGetReportByID_MalformedID(t *testing.T) {
	// No database: a malformed id must be answered before any query.
	r := &implRepository{l: log.NewNopLogger()}

	for _, id := range []string{"abc", "", "123", "not-a-uuid-at-all", "' OR 1=1 --"} {
		rpt, err := r.GetReportByID(context.Background(), id)
		if !errors.Is(err, repository.ErrReportNotFound) {
			t.Errorf("GetReportByID(%q) error = %v, want ErrReportNotFound", id, err)
		}
		if rpt != nil {
			t.Errorf("GetReportByID(%q) = %+v, want nil", id, rpt)
		}
	}
}

func TestIsInvalidText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "invalid uuid", err: &pq.Error{Code: pqInvalidTextRepresentation}, want: true},
		{name: "wrapped", err: fmt.Errorf("query: %w", &pq.Error{Code: pqInvalidTextRepresentation}), want: true},
		{name: "other pq error", err: &pq.Error{Code: "57014"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isInvalidText(tt.err); got != tt.want {
				t.Errorf("isInvalidText() = %v, want %v", got, tt.want)
			}
		})
	}
}
