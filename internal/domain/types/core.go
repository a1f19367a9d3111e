package types

// Username identifies an account on the remote API.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// ArticleID identifies an article on the discussion board.
type ArticleID int64

// CommentID identifies a comment under an article.
type CommentID int64

// ProductID identifies a financial product in the catalog.
type ProductID int64
