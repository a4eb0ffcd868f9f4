package entity

import "time"

// DailyReport informe diario de obra.
type DailyReport struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id" validate:"required"`
	Date         *time.Time `json:"date" validate:"required"`
	Author       string     `json:"author"`
	Weather      string     `json:"weather"`
	Workers      int        `json:"workers" validate:"min=0"`
	Activities   string     `json:"activities" validate:"required"`
	Incidents    string     `json:"incidents"`
	Observations string     `json:"observations"`
}

func (r DailyReport) RecordID() string { return r.ID }

func (r DailyReport) SearchText() []string {
	return []string{r.Author, r.Activities, r.Incidents, r.Observations}
}

func (r DailyReport) Attribute(name string) (string, bool) {
	switch name {
	case "project_id":
		return known(r.ProjectID)
	case "date":
		if r.Date == nil {
			return "", true
		}
		return r.Date.Format("2006-01-02"), true
	}
	return "", false
}
