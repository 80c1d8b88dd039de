package models

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		name    string
		request PageRequest
		want    int
	}{
		{name: "first page", request: PageRequest{Page: 0, Size: 20}, want: 0},
		{name: "third page", request: PageRequest{Page: 2, Size: 10}, want: 20},
		{name: "zero size", request: PageRequest{Page: 5, Size: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.request.Offset())
		})
	}
}

func TestNewPage_Metadata(t *testing.T) {
	tests := []struct {
		name          string
		content       []int
		request       PageRequest
		total         int64
		wantPages     int
		wantFirst     bool
		wantLast      bool
		wantEmpty     bool
		wantNumberOfE int
	}{
		{
			name:          "single partial page",
			content:       []int{1, 2, 3},
			request:       PageRequest{Page: 0, Size: 10},
			total:         3,
			wantPages:     1,
			wantFirst:     true,
			wantLast:      true,
			wantNumberOfE: 3,
		},
		{
			name:          "middle page",
			content:       []int{11, 12},
			request:       PageRequest{Page: 1, Size: 2},
			total:         6,
			wantPages:     3,
			wantNumberOfE: 2,
		},
		{
			name:          "exact last page",
			content:       []int{5, 6},
			request:       PageRequest{Page: 2, Size: 2},
			total:         6,
			wantPages:     3,
			wantLast:      true,
			wantNumberOfE: 2,
		},
		{
			name:      "empty result",
			content:   nil,
			request:   PageRequest{Page: 0, Size: 20},
			total:     0,
			wantPages: 0,
			wantFirst: true,
			wantLast:  true,
			wantEmpty: true,
		},
		{
			name:      "page past the end",
			content:   nil,
			request:   PageRequest{Page: 7, Size: 5},
			total:     10,
			wantPages: 2,
			wantLast:  true,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.content, tt.request, tt.total)

			require.NotNil(t, page.Content)
			require.NotNil(t, page.Sort)
			assert.Equal(t, tt.total, page.TotalElements)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.request.Page, page.Number)
			assert.Equal(t, tt.request.Size, page.Size)
			assert.Equal(t, tt.wantNumberOfE, page.NumberOfElements)
			assert.Equal(t, tt.wantFirst, page.First)
			assert.Equal(t, tt.wantLast, page.Last)
			assert.Equal(t, tt.wantEmpty, page.Empty)
		})
	}
}

func TestMapPage_KeepsMetadata(t *testing.T) {
	request := PageRequest{Page: 1, Size: 2, Sort: []SortOrder{{Property: "name", Direction: Desc}}}
	page := NewPage([]int{3, 4}, request, 5)

	mapped := MapPage(page, strconv.Itoa)

	assert.Equal(t, []string{"3", "4"}, mapped.Content)
	assert.Equal(t, page.TotalElements, mapped.TotalElements)
	assert.Equal(t, page.TotalPages, mapped.TotalPages)
	assert.Equal(t, page.Number, mapped.Number)
	assert.Equal(t, page.Size, mapped.Size)
	assert.Equal(t, page.NumberOfElements, mapped.NumberOfElements)
	assert.Equal(t, page.First, mapped.First)
	assert.Equal(t, page.Last, mapped.Last)
	assert.Equal(t, page.Empty, mapped.Empty)
	assert.Equal(t, page.Sort, mapped.Sort)
}
