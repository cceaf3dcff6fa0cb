// Package view derives filtered, sorted, paginated slices for display.
// Everything here is a pure function over data already in memory.
package view

import (
	"sort"
	"strings"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"

	"github.com/samber/lo"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortAmountAsc  SortKey = "amount-asc"
	SortAmountDesc SortKey = "amount-desc"
)

type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	PageNumber int `json:"page"`
	PageSize   int `json:"page_size"`
}

type ProjectFilter struct {
	Query        string
	Sector       domain.Sector
	ContractType domain.ContractType
	Status       domain.ProjectStatus
	MinGoal      float64
	MaxGoal      float64
	Sort         SortKey
	PageNumber   int
	PageSize     int
}

// FilterProjects applies substring match on title/description, equality
// match on the enum fields, and a goal range, then sorts and paginates.
func FilterProjects(projects []*domain.Project, f ProjectFilter) *Page[*domain.Project] {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	matched := lo.Filter(projects, func(p *domain.Project, _ int) bool {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
		if f.Sector != "" && p.Sector != f.Sector {
			return false
		}
		if f.ContractType != "" && p.ContractType != f.ContractType {
			return false
		}
		if f.Status != "" && p.Status != f.Status {
			return false
		}
		if f.MinGoal > 0 && p.FundingGoal < f.MinGoal {
			return false
		}
		if f.MaxGoal > 0 && p.FundingGoal > f.MaxGoal {
			return false
		}
		return true
	})

	switch f.Sort {
	case SortOldest:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		})
	case SortAmountAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].FundingGoal < matched[j].FundingGoal
		})
	case SortAmountDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].FundingGoal > matched[j].FundingGoal
		})
	default: // SortNewest
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}

	return paginate(matched, f.PageNumber, f.PageSize)
}

func paginate[T any](items []T, pageNumber, pageSize int) *Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if pageNumber <= 0 {
		pageNumber = 1
	}

	start := (pageNumber - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return &Page[T]{
		Items:      items[start:end],
		Total:      len(items),
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}
