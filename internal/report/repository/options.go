package repository

type ListReportsOptions struct {
	UserID string
	// Statuses holds raw status values; empty means any status.
	Statuses []string
	Limit    int
	Offset   int
}
