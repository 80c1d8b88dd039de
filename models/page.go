package models

// Direction is the sort direction of a [SortOrder].
type Direction string

const (
	// Asc sorts in ascending order. It is the default direction.
	Asc Direction = "ASC"
	// Desc sorts in descending order.
	Desc Direction = "DESC"
)

// SortOrder is a single "order by" clause of a [PageRequest].
type SortOrder struct {
	// Property is the name of the sorted field as seen by API callers
	// (e.g. "name", "birthDate"), not the database column.
	Property string `json:"property"`

	// Direction is either [Asc] or [Desc].
	Direction Direction `json:"direction"`
}

// PageRequest describes which slice of an ordered result set is requested.
// It is passed through the service and store layers unmodified.
type PageRequest struct {
	// Page is the zero-based page index.
	Page int `json:"page"`

	// Size is the maximum number of elements on a page.
	Size int `json:"size"`

	// Sort lists the order clauses in priority order. Empty means the
	// store's default order.
	Sort []SortOrder `json:"sort,omitempty"`
}

// Offset returns the number of rows preceding the requested page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is a bounded slice of a larger ordered result set together with
// its pagination metadata.
type Page[T any] struct {
	// Content holds the elements of the current page in store order.
	Content []T `json:"content"`

	// TotalElements is the size of the whole result set.
	TotalElements int64 `json:"totalElements"`

	// TotalPages is the number of pages of Size elements needed to hold
	// TotalElements.
	TotalPages int `json:"totalPages"`

	// Number is the zero-based index of this page.
	Number int `json:"number"`

	// Size is the requested page size.
	Size int `json:"size"`

	// NumberOfElements is len(Content).
	NumberOfElements int `json:"numberOfElements"`

	First bool `json:"first"`
	Last  bool `json:"last"`
	Empty bool `json:"empty"`

	// Sort echoes the order clauses of the request.
	Sort []SortOrder `json:"sort"`
}

// NewPage assembles a [Page] for request from the fetched content and the
// total number of elements in the result set.
func NewPage[T any](content []T, request PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	sort := request.Sort
	if sort == nil {
		sort = []SortOrder{}
	}

	totalPages := 0
	if request.Size > 0 {
		totalPages = int((total + int64(request.Size) - 1) / int64(request.Size))
	}

	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           request.Page,
		Size:             request.Size,
		NumberOfElements: len(content),
		First:            request.Page == 0,
		Last:             request.Page+1 >= totalPages,
		Empty:            len(content) == 0,
		Sort:             sort,
	}
}

// MapPage converts the content of page with fn and keeps every metadata
// field unchanged.
func MapPage[T, R any](page Page[T], fn func(T) R) Page[R] {
	content := make([]R, 0, len(page.Content))
	for _, item := range page.Content {
		content = append(content, fn(item))
	}

	return Page[R]{
		Content:          content,
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages,
		Number:           page.Number,
		Size:             page.Size,
		NumberOfElements: page.NumberOfElements,
		First:            page.First,
		Last:             page.Last,
		Empty:            page.Empty,
		Sort:             page.Sort,
	}
}
