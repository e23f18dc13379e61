package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{name: "Zero", cents: 0, expected: "$0.00"},
		{name: "Cents only", cents: 666, expected: "$6.66"},
		{name: "Hundreds", cents: 15795, expected: "$157.95"},
		{name: "Thousands separator", cents: 123456, expected: "$1,234.56"},
		{name: "Round dollars", cents: 500000, expected: "$5,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.cents))
		})
	}
}

func TestDateToLocal(t *testing.T) {
	assert.Equal(t, "Dec 6, 2022", DateToLocal(time.Date(2022, time.December, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Jun 27, 2023", DateToLocal(time.Date(2023, time.June, 27, 0, 0, 0, 0, time.UTC)))
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		expected    []string
	}{
		{name: "No pages", currentPage: 1, totalPages: 0, expected: []string{}},
		{name: "Few pages", currentPage: 2, totalPages: 3, expected: []string{"1", "2", "3"}},
		{name: "Seven pages", currentPage: 5, totalPages: 7, expected: []string{"1", "2", "3", "4", "5", "6", "7"}},
		{name: "Near start", currentPage: 2, totalPages: 10, expected: []string{"1", "2", "3", "...", "9", "10"}},
		{name: "Near end", currentPage: 9, totalPages: 10, expected: []string{"1", "2", "...", "8", "9", "10"}},
		{name: "Middle", currentPage: 5, totalPages: 10, expected: []string{"1", "...", "4", "5", "6", "...", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pagination(tt.currentPage, tt.totalPages))
		})
	}
}

func TestYAxis(t *testing.T) {
	labels, top := YAxis([]int64{2000, 1800, 4800, 3500})
	assert.Equal(t, int64(5000), top)
	assert.Equal(t, []string{"$5K", "$4K", "$3K", "$2K", "$1K", "$0K"}, labels)

	labels, top = YAxis(nil)
	assert.Equal(t, int64(0), top)
	assert.Equal(t, []string{"$0K"}, labels)
}
