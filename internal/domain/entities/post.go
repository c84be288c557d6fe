package entities

import (
	"errors"
	"time"
)

// Ошибки домена постов.
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotLiked         = errors.New("post has not yet been liked")
	ErrNotPostAuthor    = errors.New("user is not the author of the post")
	ErrNotCommentAuthor = errors.New("user is not the author of the comment")
)

// Like представляет отметку "нравится" на посте. Не более одной на пользователя.
type Like struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment представляет комментарий к посту. Имя и аватар автора
// денормализованы на момент создания и не синхронизируются позднее.
type Comment struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Text         string    `json:"text"`
	AuthorName   string    `json:"name"`
	AuthorAvatar string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post представляет публикацию пользователя со встроенными
// коллекциями лайков и комментариев (новые записи впереди).
type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Text         string    `json:"text"`
	AuthorName   string    `json:"name"`
	AuthorAvatar string    `json:"avatar"`
	Likes        []Like    `json:"likes"`
	Comments     []Comment `json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
}
