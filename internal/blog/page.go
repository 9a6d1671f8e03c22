package blog

import (
	"math"
	"strconv"
	"strings"
)

const DefaultPageSize = 10

type Page struct {
	Number   int
	Size     int
	Total    int
	NumPages int
}

// ParsePageNumber reads the page query parameter. Anything that is not a
// positive integer is page 1; "last" asks for the last page.
func ParsePageNumber(s string) int {
	s = strings.TrimSpace(s)
	if s == "last" {
		return math.MaxInt32
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}

	return n
}

// NewPage clamps number into [1, NumPages]. An empty listing has one page.
func NewPage(number, size, total int) Page {
	if size < 1 {
		size = DefaultPageSize
	}

	numPages := (total + size - 1) / size
	if numPages < 1 {
		numPages = 1
	}

	if number < 1 {
		number = 1
	} else if number > numPages {
		number = numPages
	}

	return Page{
		Number:   number,
		Size:     size,
		Total:    total,
		NumPages: numPages,
	}
}

func (p Page) HasPrevious() bool { return p.Number > 1 }

func (p Page) HasNext() bool { return p.Number < p.NumPages }

func (p Page) PreviousNumber() int { return p.Number - 1 }

func (p Page) NextNumber() int { return p.Number + 1 }
