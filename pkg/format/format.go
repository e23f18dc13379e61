package format

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats an amount in cents as US dollars, e.g. 123456 -> "$1,234.56".
func Currency(cents int64) string {
	return printer.Sprintf("$%v", number.Decimal(float64(cents)/100, number.Scale(2)))
}

// DateToLocal formats a calendar date the way the dashboard lists show it, e.g. "Dec 6, 2022".
func DateToLocal(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

const ellipsis = "..."

// Pagination returns the page tokens shown under a paginated table. Long
// ranges are shortened with "..." around the current page.
func Pagination(currentPage, totalPages int) []string {
	pages := func(nums ...int) []string {
		out := make([]string, 0, len(nums))
		for _, n := range nums {
			if n == 0 {
				out = append(out, ellipsis)
				continue
			}
			out = append(out, strconv.Itoa(n))
		}
		return out
	}

	if totalPages <= 0 {
		return []string{}
	}
	if totalPages <= 7 {
		all := make([]int, totalPages)
		for i := range all {
			all[i] = i + 1
		}
		return pages(all...)
	}
	if currentPage <= 3 {
		return pages(1, 2, 3, 0, totalPages-1, totalPages)
	}
	if currentPage >= totalPages-2 {
		return pages(1, 2, 0, totalPages-2, totalPages-1, totalPages)
	}
	return pages(1, 0, currentPage-1, currentPage, currentPage+1, 0, totalPages)
}

// YAxis returns revenue chart labels from the highest value rounded up to the
// next thousand down to zero, in steps of a thousand.
func YAxis(values []int64) (labels []string, topLabel int64) {
	var highest int64
	for _, v := range values {
		highest = max(highest, v)
	}
	topLabel = int64(math.Ceil(float64(highest)/1000)) * 1000

	for i := topLabel; i >= 0; i -= 1000 {
		labels = append(labels, "$"+strconv.FormatInt(i/1000, 10)+"K")
	}
	return labels, topLabel
}
