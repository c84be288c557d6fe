package dto

// PostRequest содержит текст нового поста.
type PostRequest struct {
	Text string `json:"text"`
}

// CommentRequest содержит текст нового комментария.
type CommentRequest struct {
	Text string `json:"text"`
}

// MessageResponse содержит человекочитаемое подтверждение операции.
type MessageResponse struct {
	Msg string `json:"msg"`
}
