package services

// AvatarService определяет вывод URL аватара из адреса электронной почты.
type AvatarService interface {
	AvatarURL(email string) string
}
