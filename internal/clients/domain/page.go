package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidPage      = errors.New("invalid page request")
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection accepts ASC or DESC in any case.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// SortField names a sortable client attribute using its JSON name.
type SortField string

const (
	SortByID        SortField = "id"
	SortByName      SortField = "name"
	SortByCPF       SortField = "cpf"
	SortByIncome    SortField = "income"
	SortByBirthDate SortField = "birthDate"
	SortByChildren  SortField = "children"
)

var sortFields = []SortField{
	SortByID, SortByName, SortByCPF, SortByIncome, SortByBirthDate, SortByChildren,
}

func ParseSortField(s string) (SortField, error) {
	s = strings.TrimSpace(s)
	for _, f := range sortFields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
}

type Sort struct {
	Field     SortField
	Direction Direction
}

// PageRequest selects a 0-based page of Size elements in Sort order.
type PageRequest struct {
	Page int
	Size int
	Sort Sort
}

const (
	DefaultPageSize = 12
	MaxPageSize     = 1000
)

// DefaultPageRequest mirrors the query defaults of the HTTP API.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page: 0,
		Size: DefaultPageSize,
		Sort: Sort{Field: SortByName, Direction: Asc},
	}
}

func (p PageRequest) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: page must not be negative", ErrInvalidPage)
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d", ErrInvalidPage, MaxPageSize)
	}
	if _, err := ParseSortField(string(p.Sort.Field)); err != nil {
		return err
	}
	if _, err := ParseDirection(string(p.Sort.Direction)); err != nil {
		return err
	}
	return nil
}

// Offset is the number of elements preceding the requested page. It
// saturates at math.MaxInt instead of overflowing for huge page indices.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// PastEnd reports whether the page starts at or after the last of total
// elements.
func (p PageRequest) PastEnd(total int64) bool {
	if p.Size <= 0 {
		return true
	}
	pages := (total + int64(p.Size) - 1) / int64(p.Size)
	return int64(p.Page) >= pages
}

// Page is one slice of an ordered result set. TotalElements counts the whole
// filtered set, not just Content.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
	}
}

// TotalPages is ceil(TotalElements / Size), zero for an empty result.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.TotalElements <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) IsFirst() bool { return p.Number == 0 }

func (p Page[T]) IsLast() bool { return p.Number >= p.TotalPages()-1 }

// MapPage converts the content of a page while keeping its metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}
	return Page[U]{
		Content:       out,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
	}
}
