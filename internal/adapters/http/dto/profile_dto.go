package dto

import (
	"strings"

	"devconnect/internal/domain/entities"
	"devconnect/internal/ports/api"
)

// ProfileRequest содержит данные для создания или частичного обновления профиля.
// Nil-поля отсутствуют в запросе и не затрагивают сохраненные значения.
// Навыки передаются строкой с разделителем-запятой, как в наблюдаемом API.
type ProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         *string `json:"status"`
	Skills         *string `json:"skills"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"github_username"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

// ToPatch преобразует запрос в доменный патч профиля.
func (r *ProfileRequest) ToPatch() *entities.ProfilePatch {
	patch := &entities.ProfilePatch{
		Company:        r.Company,
		Website:        r.Website,
		Location:       r.Location,
		Status:         r.Status,
		Bio:            r.Bio,
		GithubUsername: r.GithubUsername,
	}

	if r.Skills != nil {
		patch.Skills = splitSkills(*r.Skills)
	}

	social := make(map[string]string)
	for key, value := range map[string]*string{
		"youtube":   r.Youtube,
		"twitter":   r.Twitter,
		"facebook":  r.Facebook,
		"linkedin":  r.Linkedin,
		"instagram": r.Instagram,
	} {
		if value != nil {
			social[key] = *value
		}
	}
	if len(social) > 0 {
		patch.Social = social
	}

	return patch
}

// splitSkills разбирает строку навыков "a, b, c" в список без пустых элементов.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// ExperienceRequest содержит данные для добавления записи об опыте работы.
type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// ToInput преобразует запрос во входные данные основного порта.
func (r *ExperienceRequest) ToInput() *api.ExperienceInput {
	return &api.ExperienceInput{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		From:        r.From,
		To:          r.To,
		Current:     r.Current,
		Description: r.Description,
	}
}

// EducationRequest содержит данные для добавления записи об образовании.
type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ToInput преобразует запрос во входные данные основного порта.
func (r *EducationRequest) ToInput() *api.EducationInput {
	return &api.EducationInput{
		School:       r.School,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		From:         r.From,
		To:           r.To,
		Current:      r.Current,
		Description:  r.Description,
	}
}
