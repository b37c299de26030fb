package pagination

const (
	// DefaultLimit is the page size when a limit is not provided.
	DefaultLimit = 100
	// MaxLimit caps how many rows any listing query can request.
	MaxLimit = 500
)

// Page holds offset pagination inputs from controllers or services.
type Page struct {
	Limit  int
	Offset int
}

// Normalize enforces the default and maximum limits and clamps negative
// offsets to zero.
func Normalize(p Page) Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
