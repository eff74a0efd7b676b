package paginator

import "testing"

func TestAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   PaginateQuery
		want PaginateQuery
	}{
		{"zero values", PaginateQuery{}, PaginateQuery{Page: DefaultPage, Limit: DefaultLimit}},
		{"over max", PaginateQuery{Page: 2, Limit: 500}, PaginateQuery{Page: 2, Limit: MaxLimit}},
		{"valid", PaginateQuery{Page: 3, Limit: 20}, PaginateQuery{Page: 3, Limit: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			if q != tt.want {
				t.Errorf("mismatch: got %+v, want %+v", q, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 10}
	if got := q.Offset(); got != 20 {
		t.Errorf("mismatch: got %d, want 20", got)
	}
}

func TestToResponse(t *testing.T) {
	resp := New(PaginateQuery{Page: 2, Limit: 10}, 25, 10).ToResponse()
	if resp.TotalPages != 3 {
		t.Errorf("total pages mismatch: got %d, want 3", resp.TotalPages)
	}
	if !resp.HasNext || !resp.HasPrev {
		t.Errorf("navigation mismatch: got next=%v prev=%v", resp.HasNext, resp.HasPrev)
	}
}
