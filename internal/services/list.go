package services

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/query"
)

// ListInput holds the per-request list parameters.
type ListInput struct {
	OwnerID  uint64
	Search   string
	Filter   string
	Page     int
	PageSize int
}

func (in ListInput) normalized() ListInput {
	if in.Page < constants.MinPageSize {
		in.Page = constants.MinPageSize
	}
	if in.PageSize < constants.MinPageSize || in.PageSize > constants.MaxPageSize {
		in.PageSize = constants.DefaultPageSize
	}
	if in.Page > math.MaxInt/in.PageSize {
		in.Page = math.MaxInt / in.PageSize
	}
	return in
}

// ListResult is one page of an entity list. Warning reports an ignored filter;
// Advisory is set when the list could not be loaded and Items is empty.
type ListResult[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
	Filter   string
	Search   string
	Warning  string
	Advisory string
}

// lister runs the ownership → search → sort → window pipeline for one entity.
type lister[T any] struct {
	entity  string
	owner   func(userID uint64) query.Owner
	search  func(text string) query.Search
	filters query.FilterSet
	list    func(spec query.Spec) ([]T, int64, error)
	// retryWithDefault retries a failed non-default filter once with the default.
	retryWithDefault bool
}

func (l lister[T]) run(logger *slog.Logger, input ListInput) ListResult[T] {
	input = input.normalized()
	search := query.NormalizeSearch(input.Search)
	resolution := l.filters.Resolve(input.Filter)

	result := ListResult[T]{
		Items:    []T{},
		Page:     input.Page,
		PageSize: input.PageSize,
		Filter:   resolution.Key,
		Search:   search,
		Warning:  resolution.Warning,
	}
	if resolution.Warning != "" {
		logger.Warn("invalid list filter", "entity", l.entity, "filter", input.Filter)
	}

	spec := query.Spec{
		Owner:  l.owner(input.OwnerID),
		Search: l.search(search),
		Order:  resolution.Order,
		Window: query.Window{Offset: (input.Page - 1) * input.PageSize, Limit: input.PageSize},
	}

	items, total, err := l.list(spec)
	if err != nil && l.retryWithDefault && resolution.Key != l.filters.Default {
		logger.Warn("list failed, retrying with default filter",
			"entity", l.entity, "filter", resolution.Key, "error", err)
		spec.Order = l.filters.DefaultOrder()
		result.Filter = l.filters.Default
		items, total, err = l.list(spec)
	}
	if err != nil {
		logger.Error("failed to list records",
			"entity", l.entity, "owner_id", input.OwnerID, "filter", result.Filter, "error", err)
		result.Advisory = fmt.Sprintf("We couldn't load %s right now. Please try again later.", l.entity)
		return result
	}

	result.Items = items
	result.Total = total
	return result
}

func ownedBy(column string) func(uint64) query.Owner {
	return func(userID uint64) query.Owner {
		return query.Owner{ID: userID, Column: column}
	}
}

func ownedThroughEmployee(column string) func(uint64) query.Owner {
	return func(userID uint64) query.Owner {
		return query.Owner{ID: userID, Through: column}
	}
}
