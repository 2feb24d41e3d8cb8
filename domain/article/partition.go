package article

import "sort"

// PartitionByDay groups articles by their day key, preserving insertion order
// within each day, and returns the sorted list of distinct day keys. The
// 8-digit YYYYMMDD format sorts lexicographically in chronological order.
// Callers must treat an empty key list as the empty-grouping failure state.
func PartitionByDay(articles []Article) (map[string][]Article, []string) {
	byDay := make(map[string][]Article)
	for _, a := range articles {
		byDay[a.DateKey] = append(byDay[a.DateKey], a)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	return byDay, days
}

// FormatDayKey renders an 8-digit day key as YYYY-MM-DD. Keys of any other
// length pass through unchanged.
func FormatDayKey(dayKey string) string {
	if len(dayKey) != 8 {
		return dayKey
	}
	return dayKey[0:4] + "-" + dayKey[4:6] + "-" + dayKey[6:8]
}
