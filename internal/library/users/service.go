package users

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

const kind = "user"

// DefaultRoleName is assigned when a signup carries no explicit role.
const DefaultRoleName = "Client user"

var fields = store.FieldTable{
	"username":  {Column: "username", Type: store.TypeString},
	"name":      {Column: "name", Type: store.TypeString},
	"last_name": {Column: "last_name", Type: store.TypeString},
	"email":     {Column: "email", Type: store.TypeString},
	"biography": {Column: "biography", Type: store.TypeString},
	"gender":    {Column: "gender_id", Type: store.TypeID},
	"birthdate": {Column: "birthdate", Type: store.TypeDate},
	"user_img":  {Column: "user_img", Type: store.TypeString},
	"role":      {Column: "role_id", Type: store.TypeID},
}

type Service struct {
	store   *store.Store[model.User]
	roles   *store.Store[model.Role]
	genders *store.Store[model.Gender]
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		store:   store.New[model.User](db, "Gender", "Role"),
		roles:   store.New[model.Role](db),
		genders: store.New[model.Gender](db),
	}
}

// Store exposes the user store to collaborators (auth, notifications).
func (s *Service) Store() *store.Store[model.User] { return s.store }

func (s *Service) Create(ctx context.Context, u *model.User, password string) (*model.User, error) {
	taken, err := s.store.CountWhere(ctx, store.Cond{
		Query: "LOWER(username) LIKE ? AND LOWER(email) LIKE ?",
		Args:  []any{"%" + strings.ToLower(u.Username) + "%", "%" + strings.ToLower(u.Email) + "%"},
	})
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, apierr.AlreadyExists(kind)
	}

	if u.GenderID != "" {
		gender, err := s.genders.FindByID(ctx, u.GenderID)
		if err != nil {
			return nil, err
		}
		if gender == nil {
			return nil, apierr.NotFound("gender")
		}
	}
	if u.RoleID == "" {
		defaultRole, err := s.roles.Filter(ctx, store.Cond{Query: "name = ?", Args: []any{DefaultRoleName}}, store.Query{Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(defaultRole) == 0 {
			return nil, apierr.NotFound("role")
		}
		u.RoleID = defaultRole[0].ID
	} else {
		role, err := s.roles.FindByID(ctx, u.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, apierr.NotFound("role")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hash)

	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, u.ID)
}

func (s *Service) GetAll(ctx context.Context, page, limit string) (*store.Envelope[model.User], error) {
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

func (s *Service) Filter(ctx context.Context, field, value, page, limit string) (*store.Envelope[model.User], error) {
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

func (s *Service) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierr.NotFound(kind)
	}
	return u, nil
}

// FindByEmail is used by the auth layer; returns nil when unknown.
func (s *Service) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	list, err := s.store.Filter(ctx, store.Cond{Query: "LOWER(email) = ?", Args: []any{strings.ToLower(email)}}, store.Query{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (*model.User, error) {
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

	username, _ := updates["username"].(string)
	email, _ := updates["email"].(string)
	if username != "" || email != "" {
		if username == "" {
			username = existing.Username
		}
		if email == "" {
			email = existing.Email
		}
		matches, err := s.store.Filter(ctx, store.Cond{
			Query: "LOWER(username) LIKE ? AND LOWER(email) LIKE ?",
			Args:  []any{"%" + strings.ToLower(username) + "%", "%" + strings.ToLower(email) + "%"},
		}, store.Query{Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(matches) != 0 && matches[0].ID != id {
			return nil, apierr.AlreadyExists(kind)
		}
	}

	if password, ok := updates["password"].(string); ok && password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		delete(updates, "password")
		updates["password_hash"] = string(hash)
	}

	return s.store.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) (*model.User, error) {
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
