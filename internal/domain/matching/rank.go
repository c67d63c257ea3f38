package matching

import "sort"

// Ranked pairs a candidate position (its index in fetch order) with its score.
type Ranked struct {
	Index int
	Score Score
}

// Rank orders by descending percentage; equal scores keep fetch order.
func Rank(items []Ranked) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score.Percentage > items[j].Score.Percentage
	})
}

type Page struct {
	CurrentPage int
	PageSize    int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// Paginate returns the [start, end) window of a ranked list of total items for
// a 1-based page. page and size must be positive.
func Paginate(total, page, size int) (int, int, Page) {
	totalPages := 0
	if total > 0 {
		totalPages = total / size
		if total%size != 0 {
			totalPages++
		}
	}

	start := total
	if page <= totalPages {
		start = (page - 1) * size
	}
	end := total
	if total-start > size {
		end = start + size
	}

	return start, end, Page{
		CurrentPage: page,
		PageSize:    size,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
