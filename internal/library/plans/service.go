package plans

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

const kind = "active_plan"

// Plan status names the subscription lifecycle resolves at runtime.
const (
	ActiveStatusName   = "ACTIVE"
	CanceledStatusName = "CANCELED"
	FinishedStatusName = "FINISHED"
)

var fields = store.FieldTable{
	"user":          {Column: "user_id", Type: store.TypeID},
	"plan":          {Column: "plan_id", Type: store.TypeID},
	"plan_status":   {Column: "plan_status_id", Type: store.TypeID},
	"return_date":   {Column: "return_date", Type: store.TypeDate},
	"returned_date": {Column: "returned_date", Type: store.TypeDate},
}

type Service struct {
	store    *store.Store[model.ActivePlan]
	users    *store.Store[model.User]
	plans    *store.Store[model.Plan]
	statuses *store.Store[model.PlanStatus]
	now      func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		store:    store.New[model.ActivePlan](db, "User", "Plan", "PlanStatus"),
		users:    store.New[model.User](db),
		plans:    store.New[model.Plan](db),
		statuses: store.New[model.PlanStatus](db),
		now:      time.Now,
	}
}

func (s *Service) statusByName(ctx context.Context, name string) (*model.PlanStatus, error) {
	list, err := s.statuses.Filter(ctx, store.Cond{
		Query: "name = ?",
		Args:  []any{name},
	}, store.Query{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// conflicts mirrors the loan availability predicate for subscriptions.
func conflicts(p model.ActivePlan, start, finish time.Time) bool {
	if p.CreatedAt.After(start) {
		return false
	}
	if !p.ReturnDate.Before(finish) {
		return true
	}
	return p.ReturnedDate != nil && !p.ReturnedDate.Before(finish)
}

// FindConflicting returns the user's first ACTIVE subscription conflicting
// with [start, finish], or nil. The ACTIVE status is resolved by name before
// the query; when it has not been seeded no subscription can conflict.
func (s *Service) FindConflicting(ctx context.Context, userID string, start, finish time.Time) (*model.ActivePlan, error) {
	active, err := s.statusByName(ctx, ActiveStatusName)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	candidates, err := s.store.Filter(ctx, store.Cond{
		Query: "user_id = ? AND plan_status_id = ?",
		Args:  []any{userID, active.ID},
	}, store.Query{Limit: -1})
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if conflicts(candidates[i], start, finish) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

func (s *Service) Create(ctx context.Context, p *model.ActivePlan) (*model.ActivePlan, error) {
	user, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("user")
	}
	plan, err := s.plans.FindByID(ctx, p.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apierr.NotFound("plan")
	}
	status, err := s.statuses.FindByID(ctx, p.PlanStatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, apierr.NotFound("plan_status")
	}

	start := s.now()
	if p.ReturnDate.Before(start) {
		return nil, apierr.FinishDateBeforeStartDate()
	}
	max := start.AddDate(0, 0, config.ActivePlanMaxSubscriptionDays)
	if p.ReturnDate.After(max) {
		p.ReturnDate = max
	}

	conflict, err := s.FindConflicting(ctx, p.UserID, start, p.ReturnDate)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, apierr.NotAvailable("plan")
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, p.ID)
}

// transition stamps returned_date and moves the subscription to the named
// status. Double transitions fail the same way finished loans do.
func (s *Service) transition(ctx context.Context, id, statusName string) (*model.ActivePlan, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierr.NotFound(kind)
	}
	if p.ReturnedDate != nil {
		return nil, apierr.SubscriptionAlreadyFinished()
	}
	updates := map[string]any{"returned_date": s.now()}
	if status, err := s.statusByName(ctx, statusName); err != nil {
		return nil, err
	} else if status != nil {
		updates["plan_status_id"] = status.ID
	}
	return s.store.Update(ctx, id, updates)
}

func (s *Service) Cancel(ctx context.Context, id string) (*model.ActivePlan, error) {
	return s.transition(ctx, id, CanceledStatusName)
}

func (s *Service) Finish(ctx context.Context, id string) (*model.ActivePlan, error) {
	return s.transition(ctx, id, FinishedStatusName)
}

// Renew extends an unreturned subscription by another period, capped at the
// maximum subscription span from now.
func (s *Service) Renew(ctx context.Context, id string) (*model.ActivePlan, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierr.NotFound(kind)
	}
	if p.ReturnedDate != nil {
		return nil, apierr.SubscriptionAlreadyFinished()
	}
	return s.store.Update(ctx, id, map[string]any{
		"return_date": s.now().AddDate(0, 0, config.ActivePlanMaxSubscriptionDays),
	})
}

func (s *Service) GetAll(ctx context.Context, page, limit string) (*store.Envelope[model.ActivePlan], error) {
	p, err := store.ParsePage(kind, page)
	if err != nil {
		return nil, err
	}
	l, err := store.ParsePageSize(kind, limit)
	if err != nil {
		return nil, err
	}
	list, err := s.store.FindAll(ctx, store.Query{Skip: (p - 1) * l, Limit: l})
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	return store.NewEnvelope(list, int(total), p, l), nil
}

func (s *Service) Filter(ctx context.Context, field, value, page, limit string) (*store.Envelope[model.ActivePlan], error) {
	cond, err := fields.Condition(kind, field, value)
	if err != nil {
		return nil, err
	}
	p, err := store.ParsePage(kind, page)
	if err != nil {
		return nil, err
	}
	l, err := store.ParsePageSize(kind, limit)
	if err != nil {
		return nil, err
	}
	list, err := s.store.Filter(ctx, cond, store.Query{Skip: (p - 1) * l, Limit: l})
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	return store.NewEnvelope(list, int(total), p, l), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*model.ActivePlan, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierr.NotFound(kind)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (*model.ActivePlan, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apierr.NotFound(kind)
	}
	return s.store.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) (*model.ActivePlan, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apierr.NotFound(kind)
	}
	return deleted, nil
}
