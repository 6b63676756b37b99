package content

import "slices"

// Resolve returns the first record whose id equals id exactly.
// It returns ErrNotFound when nothing matches; the empty id is not special.
func Resolve[T Record](items []T, id string) (T, error) {
	for _, item := range items {
		if item.RecordID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// FilterByCategory returns the records whose category equals category, in
// stored order. AllCategories returns the whole collection. The result is
// never nil and never aliases items.
func FilterByCategory[T Record](items []T, category string) []T {
	if category == AllCategories {
		return append(make([]T, 0, len(items)), items...)
	}
	out := make([]T, 0)
	for _, item := range items {
		if item.RecordCategory() == category {
			out = append(out, item)
		}
	}
	return out
}

// FindRelated picks up to n records other than excludeID. Records sharing
// anchorCategory come first, then the remaining slots are backfilled from
// records outside that category. Both passes keep stored order and never
// select the same record twice.
func FindRelated[T Record](items []T, excludeID, anchorCategory string, n int) []T {
	out := make([]T, 0)
	if n <= 0 {
		return out
	}
	for _, item := range items {
		if len(out) == n {
			return out
		}
		if item.RecordID() != excludeID && item.RecordCategory() == anchorCategory {
			out = append(out, item)
		}
	}
	for _, item := range items {
		if len(out) == n {
			break
		}
		if item.RecordID() != excludeID && item.RecordCategory() != anchorCategory {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns the distinct non-empty categories in first-seen order,
// led by AllCategories.
func Categories[T Record](items []T) []string {
	seen := make(map[string]bool)
	out := []string{AllCategories}
	for _, item := range items {
		c := item.RecordCategory()
		if c == "" || c == AllCategories || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// MergeCategories puts preset categories after All and ahead of the derived
// ones, dropping duplicates. Presets may name categories nothing is filed
// under yet.
func MergeCategories(preset, derived []string) []string {
	out := []string{AllCategories}
	for _, list := range [][]string{preset, derived} {
		for _, c := range list {
			if c != "" && !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
