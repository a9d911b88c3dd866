package usecase

import (
	"fmt"
	"math"
	"slices"

	"github.com/DRSN-tech/online-sales/pkg/e"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

// PAGINATION

// SortOrder — направление сортировки по одному полю (имя поля как в JSON).
type SortOrder struct {
	Field string
	Desc  bool
}

// PageRequest — запрос страницы: номер (с нуля), размер и порядок сортировки.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Page — страница результатов.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// Offset возвращает количество записей, которые нужно пропустить.
func (p PageRequest) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}

// Normalize приводит номер и размер страницы к допустимым значениям.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}

	switch {
	case p.Size < 1:
		p.Size = DefaultPageSize
	case p.Size > MaxPageSize:
		p.Size = MaxPageSize
	}

	return p
}

// CheckOffset проверяет, что конец запрошенной страницы, (page+1)*size,
// помещается в int64. Вызывается после Normalize.
func (p PageRequest) CheckOffset() error {
	if p.Size < 1 {
		return e.Wrap(fmt.Sprintf("page size %d", p.Size), e.ErrInvalidPageRequest)
	}

	if int64(p.Page) > (math.MaxInt64-int64(p.Size))/int64(p.Size) {
		return e.Wrap(fmt.Sprintf("page %d with size %d", p.Page, p.Size), e.ErrInvalidPageRequest)
	}

	return nil
}

// CheckSort проверяет, что сортировка идёт только по разрешённым полям.
func (p PageRequest) CheckSort(allowed []string) error {
	for _, order := range p.Sort {
		if !slices.Contains(allowed, order.Field) {
			return e.Wrap(fmt.Sprintf("sort field %q", order.Field), e.ErrInvalidPageRequest)
		}
	}

	return nil
}

// MAPPERS

func NewPageRequest(page, size int, sort []SortOrder) PageRequest {
	return PageRequest{
		Page: page,
		Size: size,
		Sort: sort,
	}
}

func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &Page[T]{
		Content:          content,
		Number:           req.Page,
		Size:             req.Size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}
