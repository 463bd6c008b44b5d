package queries

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/shipment"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// sortColumns whitelists the fields a listing may be ordered by, mapping
// the API names to table columns.
func sortColumns() map[string]string {
	return map[string]string{
		"createdAt":       "created_at",
		"dataSaida":       "departure_at",
		"previsaoEntrega": "forecast_at",
		"status":          "status",
		"codigoCarga":     "cargo_code",
	}
}

// ListShipmentsFilters narrows a shipment listing. All fields are optional.
type ListShipmentsFilters struct {
	ClientID      *kernel.UUID
	OperatorID    *kernel.UUID
	Status        string
	DepartureFrom *time.Time
	DepartureTo   *time.Time
	ForecastFrom  *time.Time
	ForecastTo    *time.Time
}

// ListShipmentsQuery retrieves a filtered, sorted page of shipments.
// Defaults: first page of ten items, newest registrations first.
type ListShipmentsQuery struct { //nolint:recvcheck //using for validation
	filters  ListShipmentsFilters
	status   *shipment.Status
	page     int
	pageSize int
	sortBy   string
	sortDesc bool

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a listing query. A zero page or pageSize
// falls back to the defaults, a pageSize above the cap is rejected, an
// empty sortBy means newest first, and a free-form status filter is
// normalized before use.
func NewListShipmentsQuery(
	filters ListShipmentsFilters,
	page, pageSize int,
	sortBy string,
	sortDesc bool,
) (ListShipmentsQuery, error) {
	q := ListShipmentsQuery{
		filters:  filters,
		sortDesc: sortDesc,
		guard:    guard.NewConstructorGuard(),
	}

	if filters.Status != "" {
		status, err := shipment.Normalize(filters.Status)
		if err != nil {
			return ListShipmentsQuery{}, err
		}
		q.status = &status
	}

	if page == 0 {
		page = defaultPage
	}
	if page < 1 {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	q.page = page

	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}
	q.pageSize = pageSize

	if sortBy == "" {
		sortBy = "createdAt"
	}
	if _, ok := sortColumns()[sortBy]; !ok {
		return ListShipmentsQuery{}, errs.NewValueIsInvalidError("sortBy")
	}
	q.sortBy = sortBy

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Filters returns the listing filters.
func (q ListShipmentsQuery) Filters() ListShipmentsFilters {
	return q.filters
}

// Status returns the normalized status filter, or nil when not filtering.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListShipmentsQuery) Page() int {
	return q.page
}

// PageSize returns the number of items per page.
func (q ListShipmentsQuery) PageSize() int {
	return q.pageSize
}

// SortBy returns the API name of the sort field.
func (q ListShipmentsQuery) SortBy() string {
	return q.sortBy
}

// SortDesc reports whether the listing is ordered descending.
func (q ListShipmentsQuery) SortDesc() bool {
	return q.sortDesc
}
