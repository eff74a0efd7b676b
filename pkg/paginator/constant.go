package paginator

const (
	// DefaultPage is used when the requested page is below 1.
	DefaultPage = 1
	// DefaultLimit is used when the requested limit is below 1.
	DefaultLimit = 10
	// MaxLimit caps a single page.
	MaxLimit = 50
)
