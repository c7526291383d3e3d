package dto

import (
	"fmt"
)

// PageSize is the fixed number of entries per keyboard page.
const PageSize = 10

// TotalPages is ceil(count / PageSize).
func TotalPages(count int) int {
	return (count + PageSize - 1) / PageSize
}

// PageBounds clamps a 1-based page into [1, totalPages] and returns the
// slice bounds for it.
func PageBounds(count, page int) (start, end, clamped int) {
	total := TotalPages(count)
	if total == 0 {
		return 0, 0, 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start = (page - 1) * PageSize
	end = start + PageSize
	if end > count {
		end = count
	}
	return start, end, page
}

// NavRow builds the prev / indicator / next control row. Boundary
// controls are inert: they carry the disabled payload and are
// acknowledge-only. Returns nil when one page suffices.
func NavRow(page, totalPages int, pageData func(page int) string) []Button {
	if totalPages <= 1 {
		return nil
	}

	prev := Button{Text: "−", Data: CallbackNavDisabled}
	if page > 1 {
		prev = Button{Text: "←", Data: pageData(page - 1)}
	}

	next := Button{Text: "−", Data: CallbackNavDisabled}
	if page < totalPages {
		next = Button{Text: "→", Data: pageData(page + 1)}
	}

	return []Button{
		prev,
		{Text: fmt.Sprintf("%d/%d", page, totalPages), Data: CallbackPageInfo},
		next,
	}
}
