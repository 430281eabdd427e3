package analytics

import (
	"sort"
	"time"

	"nightrituals/internal/model"
)

// HourlyActivity aggregates all dataset activity into per-hour buckets
// keyed by item kind (post, comment, microfeed, chat).
func HourlyActivity(data model.AppData) map[time.Time]map[string]int {
	buckets := make(map[time.Time]map[string]int)
	add := func(ts time.Time, kind string) {
		key := time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), 0, 0, 0, time.UTC)
		if _, ok := buckets[key]; !ok {
			buckets[key] = make(map[string]int)
		}
		buckets[key][kind]++
	}
	for _, p := range data.Posts {
		add(p.CreatedAt, "post")
	}
	for _, c := range data.Comments {
		add(c.CreatedAt, "comment")
	}
	for _, m := range data.MicroFeeds {
		add(m.CreatedAt, "microfeed")
	}
	for _, m := range data.ChatMessages {
		add(m.CreatedAt, "chat")
	}
	return buckets
}

// CategoryCounts tallies posts per category.
func CategoryCounts(posts []model.Post) map[model.Category]int {
	out := make(map[model.Category]int)
	for _, p := range posts {
		out[p.Category]++
	}
	return out
}

// SortedBucketKeys returns sorted hour keys.
func SortedBucketKeys(m map[time.Time]map[string]int) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}
