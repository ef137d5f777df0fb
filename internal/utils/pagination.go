package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const maxPageLimit = 100

// Pagination holds pagination parameters. A zero Limit means no paging.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads the page and limit query params. Requests that send
// neither get the zero Pagination so listings stay complete by default.
func ParsePagination(c *fiber.Ctx) Pagination {
	if c.Query("page") == "" && c.Query("limit") == "" {
		return Pagination{}
	}

	page := parseInt(c.Query("page", "1"), 1)
	limit := parseInt(c.Query("limit", "20"), 20)
	if limit <= 0 {
		limit = 20
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if page <= 0 {
		page = 1
	}
	// Keep Offset+Limit inside int; such a page is past any real listing.
	if maxPage := (math.MaxInt-limit)/limit + 1; page > maxPage {
		page = maxPage
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
