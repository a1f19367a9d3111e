package types

import "time"

// Article is a discussion board post as returned by /articles/articles/.
type Article struct {
	ID        ArticleID `json:"id"`
	User      Username  `json:"user"`
	Nickname  string    `json:"nickname"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Comments  []Comment `json:"comments"`
}

// Comment is a reply attached to an article.
type Comment struct {
	ID        CommentID `json:"id"`
	User      Username  `json:"user"`
	Nickname  string    `json:"nickname"`
	Article   ArticleID `json:"article"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArticlePayload is the writable part of an article.
type ArticlePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CommentPayload is the writable part of a comment.
type CommentPayload struct {
	Content string `json:"content"`
}
