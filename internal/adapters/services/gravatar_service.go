package services

import (
	"crypto/md5" //nolint:gosec // gravatar требует именно MD5 от адреса
	"encoding/hex"
	"fmt"
	"strings"

	svc "devconnect/internal/ports/services"
)

// Параметры формирования URL аватара: размер 200, заглушка mm, рейтинг pg.
const gravatarURLFormat = "https://www.gravatar.com/avatar/%s?s=200&d=mm&r=pg"

// ServiceGravatar реализует интерфейс AvatarService через gravatar.com.
type ServiceGravatar struct{}

// NewGravatar создает новый экземпляр сервиса аватаров.
func NewGravatar() svc.AvatarService {
	return &ServiceGravatar{}
}

// AvatarURL выводит URL аватара из адреса электронной почты.
func (s *ServiceGravatar) AvatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized)) //nolint:gosec
	return fmt.Sprintf(gravatarURLFormat, hex.EncodeToString(sum[:]))
}
