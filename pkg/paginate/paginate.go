// Package paginate plans page sizes that never leave a nearly empty last page.
package paginate

import "github.com/codeGROOVE-dev/tzmatch/pkg/constants"

// Config bounds the page layout.
type Config struct {
	// MaxPerPage is the regular page size.
	MaxPerPage int `json:"max_per_page"`
	// MinLastPage is the smallest final page that is left alone.
	MinLastPage int `json:"min_last_page"`
	// SinglePageCeiling is the largest total shown on one page.
	SinglePageCeiling int `json:"single_page_ceiling"`
}

// DefaultConfig returns the layout used by the CLI: 11 per page, at least 4 on
// the last page, up to 14 on a single page.
func DefaultConfig() Config {
	return Config{
		MaxPerPage:        constants.MaxPerPage,
		MinLastPage:       constants.MinLastPage,
		SinglePageCeiling: constants.SinglePageCeiling,
	}
}

// Result is a page layout.
type Result struct {
	ItemsPerPage int `json:"items_per_page"`
	TotalPages   int `json:"total_pages"`
}

// Plan computes the page layout for total items.
// Example: Plan(14, {11, 4, 14}) returns {11, 1}
// Example: Plan(23, {11, 4, 14}) returns {12, 2} instead of 11+11+1
func Plan(total int, cfg Config) Result {
	perPage := max(cfg.MaxPerPage, 1)
	if total <= 0 {
		return Result{ItemsPerPage: perPage, TotalPages: 0}
	}
	if total <= cfg.SinglePageCeiling {
		return Result{ItemsPerPage: perPage, TotalPages: 1}
	}

	pages := ceilDiv(total, perPage)
	last := total % perPage
	if last > 0 && last < cfg.MinLastPage && pages > 1 {
		perPage = ceilDiv(total, pages-1)
		if perPage > cfg.SinglePageCeiling {
			perPage = max(cfg.MaxPerPage, 1)
		}
		pages = ceilDiv(total, perPage)
	}
	return Result{ItemsPerPage: perPage, TotalPages: pages}
}

// Page returns the items on a 1-based page, or nil when page is out of range.
func Page[T any](items []T, page int, r Result) []T {
	if page < 1 || page > r.TotalPages || r.ItemsPerPage < 1 {
		return nil
	}
	start := (page - 1) * r.ItemsPerPage
	if start >= len(items) {
		return nil
	}
	end := min(start+r.ItemsPerPage, len(items))
	return items[start:end]
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
