package models

import (
	"fmt"
	"strings"
	"time"
)

// CommandResponse is the result triple every write operation returns.
// For a successful login the token travels in Message.
type CommandResponse struct {
	IsSuccessful bool   `json:"isSuccessful"`
	Message      string `json:"message"`
	Id           int    `json:"id"`
}

func Success(message string, id int) CommandResponse {
	return CommandResponse{IsSuccessful: true, Message: message, Id: id}
}

func Error(message string) CommandResponse {
	return CommandResponse{IsSuccessful: false, Message: message}
}

// PageRequest is the paging parameter bundle a read request may embed.
// TotalCountForPaging is output-only: it is written once per request after
// filtering and never bound from the wire.
type PageRequest struct {
	PageNumber          int `json:"pageNumber"`
	CountPerPage        int `json:"countPerPage"`
	TotalCountForPaging int `json:"-"`
}

// ShouldPage reports whether a paging window applies. Both values must be
// positive; zero or negative on either side disables paging entirely.
func (p PageRequest) ShouldPage() bool {
	return p.PageNumber > 0 && p.CountPerPage > 0
}

// Offset is the number of rows skipped before the page window starts.
func (p PageRequest) Offset() int {
	return (p.PageNumber - 1) * p.CountPerPage
}

// Ordering keys understood by the report handlers. Any other value leaves
// the result in input order.
const (
	OrderByBlogTitle = "BlogTitle"
	OrderByTagName   = "TagName"
)

// OrderRequest is the ordering parameter bundle a read request may embed.
type OrderRequest struct {
	OrderEntityPropertyName string `json:"orderEntityPropertyName"`
	IsOrderDescending       bool   `json:"isOrderDescending"`
}

// BlogReportRequest drives both the inner-join and left-join reports.
// BlogTitle and TagName are optional substring filters; blank means no-op.
type BlogReportRequest struct {
	BlogTitle string `json:"blogTitle"`
	TagName   string `json:"tagName"`
	PageRequest
	OrderRequest
}

// SetDefaults applies the wire defaults after JSON binding: page 1 and
// ordering by blog title.
func (r *BlogReportRequest) SetDefaults() {
	if r.PageNumber == 0 {
		r.PageNumber = 1
	}
	if r.OrderEntityPropertyName == "" {
		r.OrderEntityPropertyName = OrderByBlogTitle
	}
}

type BlogCreateRequest struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Rating      *float64  `json:"rating,omitempty"`
	PublishDate time.Time `json:"publishDate"`
	UserID      int       `json:"userId"`
}

func (r BlogCreateRequest) Validate() []string {
	return validateBlogFields(r.Title, r.Content)
}

type BlogUpdateRequest struct {
	Id      int      `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Rating  *float64 `json:"rating,omitempty"`
}

func (r BlogUpdateRequest) Validate() []string {
	return validateBlogFields(r.Title, r.Content)
}

type TagCreateRequest struct {
	Name string `json:"name"`
}

func (r TagCreateRequest) Validate() []string {
	return validateTagName(r.Name)
}

type TagUpdateRequest struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

func (r TagUpdateRequest) Validate() []string {
	return validateTagName(r.Name)
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() []string {
	var messages []string
	if strings.TrimSpace(r.UserName) == "" {
		messages = append(messages, "User Name is required!")
	}
	if r.Password == "" {
		messages = append(messages, "Password is required!")
	}
	return messages
}

type RegisterRequest struct {
	UserName        string `json:"userName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate covers the field-level constraints, including the
// password/confirmation comparison; a request failing here never reaches
// the register handler.
func (r RegisterRequest) Validate() []string {
	var messages []string
	if strings.TrimSpace(r.UserName) == "" {
		messages = append(messages, "User Name is required!")
	} else if len(r.UserName) > 50 {
		messages = append(messages, maxLength("User Name", 50))
	}
	if r.Password == "" {
		messages = append(messages, "Password is required!")
	} else if len(r.Password) > 20 {
		messages = append(messages, maxLength("Password", 20))
	}
	if r.ConfirmPassword == "" {
		messages = append(messages, "Confirm Password is required!")
	} else if r.Password != "" && r.Password != r.ConfirmPassword {
		messages = append(messages, "Passwords do not match!")
	}
	return messages
}

func validateBlogFields(title, content string) []string {
	var messages []string
	if strings.TrimSpace(title) == "" {
		messages = append(messages, "Title is required!")
	} else if len(title) > 200 {
		messages = append(messages, maxLength("Title", 200))
	}
	if strings.TrimSpace(content) == "" {
		messages = append(messages, "Content is required!")
	}
	return messages
}

func validateTagName(name string) []string {
	var messages []string
	if strings.TrimSpace(name) == "" {
		messages = append(messages, "Name is required!")
	} else if len(name) > 50 {
		messages = append(messages, maxLength("Name", 50))
	}
	return messages
}

func maxLength(field string, max int) string {
	return fmt.Sprintf("%s must be at most %d characters!", field, max)
}
