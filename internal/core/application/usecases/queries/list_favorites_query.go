package queries

import (
	"errors"
	"time"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"
	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	ErrListFavoritesQueryIsNotConstructed = errors.New(
		"ListFavoritesQuery must be created via NewListFavoritesQuery constructor",
	)
	ErrPageIsInvalid     = errs.NewValueIsInvalidError("page")
	ErrPageSizeIsInvalid = errs.NewValueIsInvalidError("pageSize")
	ErrSortIsInvalid     = errs.NewValueIsInvalidError("sort")
)

// Sort directions accepted by ListFavoritesQuery, applied to the added
// timestamp.
const (
	SortAddedAsc  = "asc"
	SortAddedDesc = "desc"
)

// DefaultFavoritesPageSize is used when the caller does not pick a page size.
const DefaultFavoritesPageSize = 20

// MaxFavoritesPageSize caps a single favorites page.
const MaxFavoritesPageSize = 100

// ListFavoritesQuery retrieves a customer's active favorites with optional
// kind filtering, pagination, and sorting by added time.
type ListFavoritesQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	kind       favorite.Kind
	page       int
	pageSize   int
	sort       string

	guard guard.ConstructorGuard
}

// NewListFavoritesQuery creates a favorites listing query. kind may be
// KindUnknown to list both restaurant and dish favorites. Page numbering
// starts at 1.
func NewListFavoritesQuery(
	customerID kernel.UUID,
	kind favorite.Kind,
	page int,
	pageSize int,
	sort string,
) (ListFavoritesQuery, error) {
	q := ListFavoritesQuery{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setCustomerID(customerID),
		q.setPage(page),
		q.setPageSize(pageSize),
		q.setSort(sort),
	); err != nil {
		return ListFavoritesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListFavoritesQuery) Validate() error {
	return q.guard.Validate(ErrListFavoritesQueryIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (q ListFavoritesQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Kind returns the kind filter, KindUnknown when unfiltered.
func (q ListFavoritesQuery) Kind() favorite.Kind {
	return q.kind
}

// Page returns the 1-based page number.
func (q ListFavoritesQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListFavoritesQuery) PageSize() int {
	return q.pageSize
}

// Sort returns the sort direction for the added timestamp.
func (q ListFavoritesQuery) Sort() string {
	return q.sort
}

func (q *ListFavoritesQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

func (q *ListFavoritesQuery) setPage(page int) error {
	if page < 1 {
		return ErrPageIsInvalid
	}

	q.page = page
	return nil
}

func (q *ListFavoritesQuery) setPageSize(pageSize int) error {
	if pageSize == 0 {
		q.pageSize = DefaultFavoritesPageSize
		return nil
	}
	if pageSize < 1 || pageSize > MaxFavoritesPageSize {
		return ErrPageSizeIsInvalid
	}

	q.pageSize = pageSize
	return nil
}

func (q *ListFavoritesQuery) setSort(sort string) error {
	switch sort {
	case "":
		q.sort = SortAddedDesc
		return nil
	case SortAddedAsc, SortAddedDesc:
		q.sort = sort
		return nil
	default:
		return ErrSortIsInvalid
	}
}

// ListFavoritesItemResponse is one favorite in the read model. Dish fields
// are zero for restaurant favorites.
type ListFavoritesItemResponse struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	Kind           favorite.Kind
	MenuItemID     *kernel.UUID
	DishName       string
	DishPriceCents int64
	DishImageURL   string
	AddedAt        time.Time
}

// ListFavoritesQueryResponse is a page of favorites plus the total count of
// matching records.
type ListFavoritesQueryResponse struct {
	Favorites []ListFavoritesItemResponse
	Total     int64
	Page      int
	PageSize  int
}
