package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Pagination selects one page of a list. The zero value lists every row.
type Pagination struct {
	Enabled bool
	Page    int
	Limit   int
}

// PageInfo describes the page that was returned
type PageInfo struct {
	ItemCount   int64
	PageCount   int
	CurrentPage int
}

func (p *PageInfo) HasNext() bool {
	return p.CurrentPage < p.PageCount
}

func (p *PageInfo) HasPrevious() bool {
	return p.CurrentPage > 1
}

// idOrder orders by primary key, which follows insertion order
var idOrder = clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}}

// FindPage runs query ordered by id, restricted to the requested page.
// Preloads are applied to the row query only, never to the count.
// A page past the last one yields ErrInvalidPage; an empty result still has page 1.
func FindPage[T any](query *gorm.DB, p Pagination, preloads ...string) ([]T, *PageInfo, error) {
	base := query.Session(&gorm.Session{})
	rows := base
	for _, preload := range preloads {
		rows = rows.Preload(preload)
	}

	items := make([]T, 0)
	if !p.Enabled {
		err := rows.Order(idOrder).Find(&items).Error
		return items, nil, translate(err)
	}

	if p.Page < 1 || p.Limit < 1 {
		return nil, nil, ErrInvalidPage
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, nil, translate(err)
	}

	pageCount := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if pageCount == 0 {
		pageCount = 1
	}
	if p.Page > pageCount {
		return nil, nil, ErrInvalidPage
	}

	err := rows.Order(idOrder).
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&items).Error
	if err != nil {
		return nil, nil, translate(err)
	}

	return items, &PageInfo{ItemCount: total, PageCount: pageCount, CurrentPage: p.Page}, nil
}
