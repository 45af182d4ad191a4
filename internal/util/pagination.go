package util

import "strconv"

// DefaultPageSize matches the storefront's 8-products-per-page grid.
const DefaultPageSize = 8

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Calculate normalizes the 1-based page number and converts it into an
// offset/limit pair. Pages below 1 clamp to 1.
func Calculate(page, size int) (offset int, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	offset = (page - 1) * size
	limit = size
	return offset, limit
}

func TotalPages(total int64, size int) int64 {
	if size < 1 {
		size = DefaultPageSize
	}
	return (total + int64(size) - 1) / int64(size)
}
