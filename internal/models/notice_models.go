package models

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// NoticeResponse текущее временное сообщение для отображения
type NoticeResponse struct {
	Message string     `json:"message"`
	Kind    NoticeKind `json:"kind,omitempty"`
}
