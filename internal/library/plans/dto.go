package plans

import (
	"time"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
)

type CreateActivePlanRequest struct {
	User       string `json:"user" binding:"required,len=26"`
	Plan       string `json:"plan" binding:"required,len=26"`
	PlanStatus string `json:"plan_status" binding:"required,len=26"`
	ReturnDate string `json:"return_date" binding:"required"`
}

func (r CreateActivePlanRequest) ActivePlan() (*model.ActivePlan, error) {
	d, err := parseDate(r.ReturnDate)
	if err != nil {
		return nil, err
	}
	return &model.ActivePlan{
		UserID:       r.User,
		PlanID:       r.Plan,
		PlanStatusID: r.PlanStatus,
		ReturnDate:   d,
	}, nil
}

type UpdateActivePlanRequest struct {
	PlanStatus *string `json:"plan_status" binding:"omitempty,len=26"`
	ReturnDate *string `json:"return_date"`
}

// Updates flattens the request into store column updates.
func (r UpdateActivePlanRequest) Updates() (map[string]any, error) {
	u := map[string]any{}
	if r.PlanStatus != nil {
		u["plan_status_id"] = *r.PlanStatus
	}
	if r.ReturnDate != nil {
		d, err := parseDate(*r.ReturnDate)
		if err != nil {
			return nil, err
		}
		u["return_date"] = d
	}
	return u, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		d, err := time.Parse(layout, s)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
