package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

// PostSearch narrows a posts query. Nil fields are not applied.
type PostSearch struct {
	ID         *int
	AuthorID   *int
	CategoryID *int

	// VisibleAt keeps only posts publicly visible at the given moment:
	// published, not scheduled after it, and either without a category
	// or with a published one.
	VisibleAt *time.Time
}

func (s *PostSearch) Apply(query *orm.Query) (*orm.Query, error) {
	if s == nil {
		return query, nil
	}

	if s.ID != nil {
		query = query.Where(`"t"."postId" = ?`, *s.ID)
	}

	if s.AuthorID != nil {
		query = query.Where(`"t"."authorId" = ?`, *s.AuthorID)
	}

	if s.CategoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *s.CategoryID)
	}

	if s.VisibleAt != nil {
		query = query.
			Where(`"t"."isPublished" = ?`, true).
			Where(`"t"."publishedAt" <= ?`, *s.VisibleAt).
			WhereGroup(func(q *orm.Query) (*orm.Query, error) {
				q = q.WhereOr(`"t"."categoryId" IS NULL`).
					WhereOr(`"t"."categoryId" IN (SELECT "categoryId" FROM "categories" WHERE "isPublished" = ?)`, true)
				return q, nil
			})
	}

	return query, nil
}
