// Package feed paginates read-only listings with offset/limit queries and a
// total count under the same filter.
package feed

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

const (
	DefaultSize = 10
	MaxSize     = 50
)

// Page is a 1-based page number and a page size.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps number to >= 1 and size to [1, MaxSize], using DefaultSize
// for non-positive sizes.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Page{Number: number, Size: size}
}

// ParsePage reads the page and limit query values; malformed values fall
// back to defaults.
func ParsePage(page, limit string) Page {
	n, _ := strconv.Atoi(page)
	s, _ := strconv.Atoi(limit)
	return NewPage(n, s)
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

type Result[T any] struct {
	Items   []T
	Total   int64
	HasMore bool
}

// Fetch counts the rows matched by q and loads the requested page ordered by
// order. q must carry its model and filters; scopes only apply to the row
// query (preloads and the like).
func Fetch[T any](ctx context.Context, q *gorm.DB, p Page, order string, scopes ...func(*gorm.DB) *gorm.DB) (Result[T], error) {
	base := q.WithContext(ctx)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return Result[T]{}, fmt.Errorf("count: %w", err)
	}

	items := make([]T, 0, p.Size)
	if int64(p.Offset()) < total {
		if err := base.Scopes(scopes...).Order(order).Offset(p.Offset()).Limit(p.Size).Find(&items).Error; err != nil {
			return Result[T]{}, fmt.Errorf("find page %d: %w", p.Number, err)
		}
	}

	return Result[T]{
		Items:   items,
		Total:   total,
		HasMore: int64(p.Offset()+len(items)) < total,
	}, nil
}
