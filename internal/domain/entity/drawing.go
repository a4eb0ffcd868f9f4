package entity

import "time"

// Drawing plano de un proyecto.
type Drawing struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id" validate:"required"`
	Title      string     `json:"title" validate:"required,max=200"`
	Discipline string     `json:"discipline"` // arquitectónico, estructural, hidráulico...
	Revision   string     `json:"revision" validate:"omitempty,max=10"`
	FileURL    string     `json:"file_url" validate:"omitempty,url"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
}

func (d Drawing) RecordID() string { return d.ID }

func (d Drawing) SearchText() []string {
	return []string{d.Title, d.Discipline, d.Revision}
}

func (d Drawing) Attribute(name string) (string, bool) {
	switch name {
	case "project_id":
		return known(d.ProjectID)
	case "discipline":
		return known(d.Discipline)
	}
	return "", false
}
