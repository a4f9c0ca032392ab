package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/blogworks/blogs-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return db, mock
}

func innerJoinColumns() []string {
	return []string{"blog_id", "blog_title", "tag_id", "tag_name"}
}

func TestReportRepo_InnerJoin(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReportRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "blogs" INNER JOIN blog_tags ON blog_tags\.blog_id = blogs\.id INNER JOIN tags ON tags\.id = blog_tags\.tag_id WHERE blogs\.title LIKE \$1`).
		WithArgs("%Aspire%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT blogs\.id AS blog_id, blogs\.title AS blog_title, tags\.id AS tag_id, tags\.name AS tag_name FROM "blogs" INNER JOIN .+ WHERE blogs\.title LIKE .+ ORDER BY blogs\.title ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows(innerJoinColumns()).
			AddRow(1, "What is Aspire?", 1, "Technology").
			AddRow(1, "What is Aspire?", 2, "Software"))

	req := &models.BlogReportRequest{
		BlogTitle:   "Aspire",
		PageRequest: models.PageRequest{PageNumber: 1, CountPerPage: 2},
	}
	req.SetDefaults()

	query, err := repo.InnerJoin(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(4), query.TotalCount)
	assert.Equal(t, 4, req.TotalCountForPaging, "count reflects all matches, not the page")

	var rows []models.BlogReportInnerJoinRow
	require.NoError(t, query.Find(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Technology", rows[0].TagName)
	assert.Equal(t, "Software", rows[1].TagName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepo_FilterMetacharactersMatchLiterally(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReportRepo(db)

	// "%", "_" and "\" in a filter are data, not wildcards
	mock.ExpectQuery(`SELECT count\(\*\) FROM "blogs" INNER JOIN .+ WHERE blogs\.title LIKE \$1`).
		WithArgs(`%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM "blogs" INNER JOIN .+ WHERE blogs\.title LIKE .+ ORDER BY blogs\.title ASC$`).
		WillReturnRows(sqlmock.NewRows(innerJoinColumns()).
			AddRow(1, "Deals: 50%_off today", 1, "Life"))

	req := &models.BlogReportRequest{BlogTitle: "50%_off"}
	req.SetDefaults()

	query, err := repo.InnerJoin(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), query.TotalCount)

	var rows []models.BlogReportInnerJoinRow
	require.NoError(t, query.Find(&rows))
	assert.Len(t, rows, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%Aspire%", containsPattern("Aspire"))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
	assert.Equal(t, `%\%%`, containsPattern("%"))
}

func TestReportRepo_InnerJoin_NoFilterNoPaging(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReportRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "blogs" INNER JOIN`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	// no LIMIT: paging is disabled when the window is not positive
	mock.ExpectQuery(`FROM "blogs" INNER JOIN .+ ORDER BY blogs\.title ASC$`).
		WillReturnRows(sqlmock.NewRows(innerJoinColumns()).
			AddRow(1, "A", 1, "T1").
			AddRow(2, "B", 1, "T1").
			AddRow(3, "C", 2, "T2"))

	req := &models.BlogReportRequest{}
	req.SetDefaults()

	query, err := repo.InnerJoin(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), query.TotalCount)

	var rows []models.BlogReportInnerJoinRow
	require.NoError(t, query.Find(&rows))
	assert.Len(t, rows, 3)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepo_InnerJoin_OrderByTagNameDescending(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReportRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "blogs" INNER JOIN`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`ORDER BY tags\.name DESC$`).
		WillReturnRows(sqlmock.NewRows(innerJoinColumns()).
			AddRow(2, "B", 2, "Z-tag").
			AddRow(1, "A", 1, "A-tag"))

	req := &models.BlogReportRequest{
		OrderRequest: models.OrderRequest{
			OrderEntityPropertyName: models.OrderByTagName,
			IsOrderDescending:       true,
		},
	}
	req.SetDefaults()

	query, err := repo.InnerJoin(context.Background(), req)
	require.NoError(t, err)

	var rows []models.BlogReportInnerJoinRow
	require.NoError(t, query.Find(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Z-tag", rows[0].TagName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepo_LeftJoin_KeepsUntaggedBlogs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReportRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "blogs" LEFT JOIN blog_tags ON blog_tags\.blog_id = blogs\.id LEFT JOIN tags ON tags\.id = blog_tags\.tag_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT blogs\.id AS blog_id, blogs\.title AS blog_title, blog_tags\.tag_id AS tag_id, tags\.name AS tag_name FROM "blogs" LEFT JOIN .+ ORDER BY blogs\.title ASC$`).
		WillReturnRows(sqlmock.NewRows(innerJoinColumns()).
			AddRow(1, "Tagged", 1, "Technology").
			AddRow(2, "Untagged", nil, nil))

	req := &models.BlogReportRequest{}
	req.SetDefaults()

	query, err := repo.LeftJoin(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), query.TotalCount)

	var rows []models.BlogReportLeftJoinRow
	require.NoError(t, query.Find(&rows))
	require.Len(t, rows, 2)
	assert.Nil(t, rows[1].TagId)
	assert.Nil(t, rows[1].TagName)
	require.NotNil(t, rows[0].TagName)
	assert.Equal(t, "Technology", *rows[0].TagName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepo_LeftJoin_FiltersAreNullSafe(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReportRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "blogs" LEFT JOIN .+ WHERE COALESCE\(tags\.name, ''\) LIKE \$1`).
		WithArgs("%Tech%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`WHERE COALESCE\(tags\.name, ''\) LIKE`).
		WillReturnRows(sqlmock.NewRows(innerJoinColumns()).
			AddRow(1, "Tagged", 1, "Technology"))

	req := &models.BlogReportRequest{TagName: " Tech "}
	req.SetDefaults()

	query, err := repo.LeftJoin(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), query.TotalCount)

	var rows []models.BlogReportLeftJoinRow
	require.NoError(t, query.Find(&rows))
	assert.Len(t, rows, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
