package store

import (
	"math"
	"strconv"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
)

// Envelope is the wire shape shared by every listing endpoint. Its field
// names are a de-facto contract with existing clients and must not change.
type Envelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

// Limit sentinels meaning "return everything on one page". "none" is what
// deployed clients send; "all" is accepted as the documented spelling.
func isNoLimit(s string) bool { return s == "none" || s == "all" }

// ParsePage validates the 1-based page number.
func ParsePage(kind, page string) (int, error) {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, apierr.InvalidQueryFilters(kind)
	}
	return p, nil
}

// ParseLimit validates the page size; the second return is true for the
// no-limit sentinel.
func ParseLimit(kind, limit string) (int, bool, error) {
	if isNoLimit(limit) {
		return 0, true, nil
	}
	l, err := strconv.Atoi(limit)
	if err != nil || l < 1 {
		return 0, false, apierr.InvalidQueryFilters(kind)
	}
	return l, false, nil
}

// ParsePageSize validates the page size for endpoints that page in the
// database. Unlike ParseLimit it rejects the no-limit sentinel.
func ParsePageSize(kind, limit string) (int, error) {
	l, err := strconv.Atoi(limit)
	if err != nil || l < 1 {
		return 0, apierr.InvalidQueryFilters(kind)
	}
	return l, nil
}

// Pipeline produces the deterministic listing view: lent suppression, then
// duplicate suppression, then pagination, in that order. IsLent and DedupKey
// are optional; entities without the corresponding notion leave them nil.
type Pipeline[T any] struct {
	Kind           string
	ShowLents      bool
	ShowDuplicates bool
	IsLent         func(T) bool
	// DedupKey returns the grouping key; ok=false marks the record as never
	// a duplicate.
	DedupKey func(T) (key string, ok bool)
}

// Run pages the already-sorted fetch result. Duplicate suppression operates
// on the unfiltered input rather than the lent-filtered slice; existing
// clients depend on that ordering, so it is kept even though it discards the
// lent filter when both flags are off.
func (p Pipeline[T]) Run(items []T, page, limit string) (*Envelope[T], error) {
	pg, err := ParsePage(p.Kind, page)
	if err != nil {
		return nil, err
	}
	lim, unlimited, err := ParseLimit(p.Kind, limit)
	if err != nil {
		return nil, err
	}

	filtered := items
	if !p.ShowLents && p.IsLent != nil {
		kept := make([]T, 0, len(filtered))
		for _, it := range filtered {
			if !p.IsLent(it) {
				kept = append(kept, it)
			}
		}
		filtered = kept
	}
	if !p.ShowDuplicates && p.DedupKey != nil {
		filtered = dedupe(items, p.DedupKey)
	}

	total := len(filtered)
	if unlimited {
		lim = total
	}
	return slicePage(filtered, total, pg, lim), nil
}

func dedupe[T any](items []T, key func(T) (string, bool)) []T {
	seen := make(map[string]struct{})
	kept := make([]T, 0, len(items))
	for _, it := range items {
		k, ok := key(it)
		if !ok {
			kept = append(kept, it)
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, it)
	}
	return kept
}

func slicePage[T any](items []T, total, page, limit int) *Envelope[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	skip := (page - 1) * limit
	end := skip + limit
	if skip > total {
		skip = total
	}
	if end > total {
		end = total
	}
	data := items[skip:end]
	if data == nil {
		data = []T{}
	}
	return &Envelope[T]{
		Data: data,
		Pagination: Pagination{
			TotalItems:  total,
			TotalPages:  totalPages,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}

// NewEnvelope wraps an already-paged slice for endpoints that push skip/limit
// into the query instead of slicing in memory.
func NewEnvelope[T any](data []T, totalItems, page, limit int) *Envelope[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}
	return &Envelope[T]{
		Data: data,
		Pagination: Pagination{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}
