package rule

import "context"

// Repository is the storage interface for the committed rule list. The
// list is small and order-significant, so implementations persist it
// wholesale: Save replaces the stored list with exactly the given rules.
type Repository interface {
	// LoadRules returns the stored rules in evaluation order.
	LoadRules(ctx context.Context) ([]Rule, error)

	// SaveRules replaces the stored rule list.
	SaveRules(ctx context.Context, rules []Rule) error

	// Close releases any resources held by the repository.
	Close() error
}
