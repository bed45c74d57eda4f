package notifications

import (
	"context"

	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

const kind = "notification"

var fields = store.FieldTable{
	"sender":            {Column: "sender_id", Type: store.TypeID},
	"receiver":          {Column: "receiver_id", Type: store.TypeID},
	"title":             {Column: "title", Type: store.TypeString},
	"message":           {Column: "message", Type: store.TypeString},
	"notification_type": {Column: "notification_type", Type: store.TypeString},
	"is_read":           {Column: "is_read", Type: store.TypeNumber},
}

type Service struct {
	store *store.Store[model.Notification]
	users *store.Store[model.User]
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		store: store.New[model.Notification](db, "Sender", "Receiver"),
		users: store.New[model.User](db),
	}
}

func (s *Service) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	sender, err := s.users.FindByID(ctx, n.SenderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, apierr.NotFound("sender")
	}
	receiver, err := s.users.FindByID(ctx, n.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apierr.NotFound("receiver")
	}
	if err := s.store.Create(ctx, n); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, n.ID)
}

// CreateForAllUsers fans one message out to every registered user. The
// sender is excluded from the audience. Each insert is independent; a
// failure partway leaves earlier notifications in place.
func (s *Service) CreateForAllUsers(ctx context.Context, senderID, title, message, notificationType string) (int, error) {
	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		return 0, err
	}
	if sender == nil {
		return 0, apierr.NotFound("sender")
	}
	audience, err := s.users.Filter(ctx, store.Cond{
		Query: "id <> ?",
		Args:  []any{senderID},
	}, store.Query{Limit: -1})
	if err != nil {
		return 0, err
	}
	created := 0
	for i := range audience {
		n := &model.Notification{
			SenderID:         senderID,
			ReceiverID:       audience[i].ID,
			Title:            title,
			Message:          message,
			NotificationType: notificationType,
		}
		if err := s.store.Create(ctx, n); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id string) (*model.Notification, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apierr.NotFound(kind)
	}
	return s.store.Update(ctx, id, map[string]any{"is_read": true})
}

func (s *Service) GetAll(ctx context.Context, page, limit string) (*store.Envelope[model.Notification], error) {
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

func (s *Service) Filter(ctx context.Context, field, value, page, limit string) (*store.Envelope[model.Notification], error) {
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

func (s *Service) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apierr.NotFound(kind)
	}
	return n, nil
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (*model.Notification, error) {
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

func (s *Service) Delete(ctx context.Context, id string) (*model.Notification, error) {
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
