package database

import (
	"context"
	"strings"

	"github.com/blogworks/blogs-backend/errs"
	"github.com/blogworks/blogs-backend/models"
	"gorm.io/gorm"
)

// ReportQuery is a prepared, not yet materialized report result. The
// repository shapes it (filter, count, order, page); the caller decides
// when to execute it and what an empty result means.
type ReportQuery struct {
	db         *gorm.DB
	TotalCount int64
}

// Find materializes the query into dest, a pointer to a row slice.
func (q *ReportQuery) Find(dest any) error {
	return q.db.Find(dest).Error
}

type ReportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db}
}

// InnerJoin builds the blog/tag pair report. A blog with no tags and a
// tag with no blogs produce no rows. The shaping order is fixed: filters, then
// the total matching count, then ordering, then the paging window.
func (r *ReportRepo) InnerJoin(ctx context.Context, req *models.BlogReportRequest) (*ReportQuery, error) {
	q := r.db.WithContext(ctx).
		Table("blogs").
		Select("blogs.id AS blog_id, blogs.title AS blog_title, tags.id AS tag_id, tags.name AS tag_name").
		Joins("INNER JOIN blog_tags ON blog_tags.blog_id = blogs.id").
		Joins("INNER JOIN tags ON tags.id = blog_tags.tag_id")

	if v := strings.TrimSpace(req.BlogTitle); v != "" {
		q = q.Where("blogs.title LIKE ?", containsPattern(v))
	}
	if v := strings.TrimSpace(req.TagName); v != "" {
		q = q.Where("tags.name LIKE ?", containsPattern(v))
	}

	return r.shape(q, req)
}

// LeftJoin builds Blog LEFT JOIN BlogTag LEFT JOIN Tag: every blog appears
// at least once, with null tag columns when it has no tags. Filters are
// null-safe; a null tag name never matches a non-empty filter.
func (r *ReportRepo) LeftJoin(ctx context.Context, req *models.BlogReportRequest) (*ReportQuery, error) {
	q := r.db.WithContext(ctx).
		Table("blogs").
		Select("blogs.id AS blog_id, blogs.title AS blog_title, blog_tags.tag_id AS tag_id, tags.name AS tag_name").
		Joins("LEFT JOIN blog_tags ON blog_tags.blog_id = blogs.id").
		Joins("LEFT JOIN tags ON tags.id = blog_tags.tag_id")

	if v := strings.TrimSpace(req.BlogTitle); v != "" {
		q = q.Where("COALESCE(blogs.title, '') LIKE ?", containsPattern(v))
	}
	if v := strings.TrimSpace(req.TagName); v != "" {
		q = q.Where("COALESCE(tags.name, '') LIKE ?", containsPattern(v))
	}

	return r.shape(q, req)
}

// shape records the post-filter total, then applies ordering and the
// paging window. Counting on a pre-order clone keeps the count query free
// of ORDER BY aliases the projection introduces.
func (r *ReportRepo) shape(q *gorm.DB, req *models.BlogReportRequest) (*ReportQuery, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, errs.NewDatabaseError("count", "BlogReport", err)
	}
	req.TotalCountForPaging = int(total)

	switch req.OrderEntityPropertyName {
	case models.OrderByBlogTitle:
		q = q.Order(orderClause("blogs.title", req.IsOrderDescending))
	case models.OrderByTagName:
		q = q.Order(orderClause("tags.name", req.IsOrderDescending))
	}

	if req.ShouldPage() {
		q = q.Offset(req.Offset()).Limit(req.CountPerPage)
	}

	return &ReportQuery{db: q, TotalCount: total}, nil
}

// likeEscaper neutralizes the LIKE metacharacters so a filter value is
// matched as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}

func orderClause(column string, descending bool) string {
	if descending {
		return column + " DESC"
	}
	return column + " ASC"
}
