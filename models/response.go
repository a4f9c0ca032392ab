package models

// DefaultDateLayout is the publish date presentation used when no other
// layout is configured for the request.
const DefaultDateLayout = "02.01.2006 15:04"

type TagResponse struct {
	Id   int    `json:"id"`
	Guid string `json:"guid"`
	Name string `json:"name"`
}

type BlogResponse struct {
	Id          int           `json:"id"`
	Guid        string        `json:"guid"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Rating      *float64      `json:"rating,omitempty"`
	PublishDate string        `json:"publishDate"`
	Tags        []TagResponse `json:"tags"`
}

// NewBlogResponse flattens a blog and its joined tags into the read shape.
// The date layout is passed in explicitly so formatting stays a
// per-request concern rather than process-global state.
func NewBlogResponse(b *Blog, dateLayout string) BlogResponse {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	tags := make([]TagResponse, 0, len(b.BlogTags))
	for _, bt := range b.BlogTags {
		tags = append(tags, NewTagResponse(&bt.Tag))
	}
	return BlogResponse{
		Id:          b.ID,
		Guid:        b.Guid,
		Title:       b.Title,
		Content:     b.Content,
		Rating:      b.Rating,
		PublishDate: b.PublishDate.Format(dateLayout),
		Tags:        tags,
	}
}

func NewTagResponse(t *Tag) TagResponse {
	return TagResponse{Id: t.ID, Guid: t.Guid, Name: t.Name}
}

// BlogReportInnerJoinRow is one denormalized row of the inner-join report;
// rows exist only for blogs that have at least one tag.
type BlogReportInnerJoinRow struct {
	BlogId    int    `json:"blogId" gorm:"column:blog_id"`
	BlogTitle string `json:"blogTitle" gorm:"column:blog_title"`
	TagId     int    `json:"tagId" gorm:"column:tag_id"`
	TagName   string `json:"tagName" gorm:"column:tag_name"`
}

// BlogReportLeftJoinRow is one row of the left-join report. Tag columns are
// nullable: a blog with no tags appears once with both set to null.
type BlogReportLeftJoinRow struct {
	BlogId    int     `json:"blogId" gorm:"column:blog_id"`
	BlogTitle string  `json:"blogTitle" gorm:"column:blog_title"`
	TagId     *int    `json:"tagId" gorm:"column:tag_id"`
	TagName   *string `json:"tagName" gorm:"column:tag_name"`
}
