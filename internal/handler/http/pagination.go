package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/crud-clients/models"
)

const (
	defaultPage     = 0
	defaultPageSize = 20
)

// parsePageRequest builds a [models.PageRequest] from the page, size and
// sort query parameters. sort may repeat and takes the form
// "property" or "property,asc|desc"; a bare property sorts ascending.
// Range checks on page and size are left to the validation layer.
func parsePageRequest(query url.Values) (models.PageRequest, error) {
	request := models.PageRequest{Page: defaultPage, Size: defaultPageSize}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.PageRequest{}, fmt.Errorf("%w: page=%q", ErrInvalidPageParameter, raw)
		}
		request.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return models.PageRequest{}, fmt.Errorf("%w: size=%q", ErrInvalidPageParameter, raw)
		}
		request.Size = size
	}

	for _, raw := range query["sort"] {
		order, err := parseSortOrder(raw)
		if err != nil {
			return models.PageRequest{}, err
		}
		request.Sort = append(request.Sort, order)
	}

	return request, nil
}

func parseSortOrder(raw string) (models.SortOrder, error) {
	property, direction, hasDirection := strings.Cut(raw, ",")
	property = strings.TrimSpace(property)
	if property == "" {
		return models.SortOrder{}, fmt.Errorf("%w: sort=%q", ErrInvalidSortParameter, raw)
	}

	order := models.SortOrder{Property: property, Direction: models.Asc}
	if !hasDirection {
		return order, nil
	}

	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case string(models.Asc):
	case string(models.Desc):
		order.Direction = models.Desc
	default:
		return models.SortOrder{}, fmt.Errorf("%w: sort=%q", ErrInvalidSortParameter, raw)
	}

	return order, nil
}
