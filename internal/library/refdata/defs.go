package refdata

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

// Services bundles one service per reference-data entity so callers can
// resolve lookup records (default role, LENT status, ACTIVE plan status)
// without reaching into the database themselves.
type Services struct {
	Roles           *Service[model.Role]
	Genders         *Service[model.Gender]
	BookStatuses    *Service[model.BookStatus]
	BookCollections *Service[model.BookCollection]
	Editorials      *Service[model.Editorial]
	Authors         *Service[model.Author]
	LoanStatuses    *Service[model.LoanStatus]
	Plans           *Service[model.Plan]
	PlanStatuses    *Service[model.PlanStatus]
	FeeTypes        *Service[model.FeeType]
}

func NewServices(db *gorm.DB) *Services {
	return &Services{
		Roles:           NewService(db, roleDef),
		Genders:         NewService(db, genderDef),
		BookStatuses:    NewService(db, bookStatusDef),
		BookCollections: NewService(db, bookCollectionDef),
		Editorials:      NewService(db, editorialDef),
		Authors:         NewService(db, authorDef),
		LoanStatuses:    NewService(db, loanStatusDef),
		Plans:           NewService(db, planDef),
		PlanStatuses:    NewService(db, planStatusDef),
		FeeTypes:        NewService(db, feeTypeDef),
	}
}

var roleDef = Def[model.Role]{
	Kind:     "role",
	KeyField: "name",
	Fields: store.FieldTable{
		"name": {Column: "name", Type: store.TypeString},
	},
	Key: func(r *model.Role) string { return r.Name },
	ID:  func(r *model.Role) string { return r.ID },
}

var genderDef = Def[model.Gender]{
	Kind:     "gender",
	KeyField: "name",
	Fields: store.FieldTable{
		"name": {Column: "name", Type: store.TypeString},
	},
	Key: func(g *model.Gender) string { return g.Name },
	ID:  func(g *model.Gender) string { return g.ID },
}

var bookStatusDef = Def[model.BookStatus]{
	Kind:     "book_status",
	KeyField: "book_status",
	Fields: store.FieldTable{
		"book_status": {Column: "book_status", Type: store.TypeString},
	},
	Key: func(s *model.BookStatus) string { return s.Name },
	ID:  func(s *model.BookStatus) string { return s.ID },
}

var bookCollectionDef = Def[model.BookCollection]{
	Kind:     "book_collection",
	KeyField: "name",
	Fields: store.FieldTable{
		"name": {Column: "name", Type: store.TypeString},
	},
	Key: func(c *model.BookCollection) string { return c.Name },
	ID:  func(c *model.BookCollection) string { return c.ID },
}

var editorialDef = Def[model.Editorial]{
	Kind:     "editorial",
	KeyField: "name",
	Fields: store.FieldTable{
		"name":    {Column: "name", Type: store.TypeString},
		"address": {Column: "address", Type: store.TypeString},
		"email":   {Column: "email", Type: store.TypeString},
	},
	Key: func(e *model.Editorial) string { return e.Name },
	ID:  func(e *model.Editorial) string { return e.ID },
}

var authorDef = Def[model.Author]{
	Kind:     "author",
	KeyField: "name",
	Fields: store.FieldTable{
		"name":      {Column: "name", Type: store.TypeString},
		"last_name": {Column: "last_name", Type: store.TypeString},
		"birthdate": {Column: "birthdate", Type: store.TypeDate},
	},
	Key: func(a *model.Author) string { return a.Name },
	ID:  func(a *model.Author) string { return a.ID },
}

var loanStatusDef = Def[model.LoanStatus]{
	Kind:     "loan_status",
	KeyField: "loan_status",
	Fields: store.FieldTable{
		"loan_status": {Column: "loan_status", Type: store.TypeString},
	},
	Key: func(s *model.LoanStatus) string { return s.Name },
	ID:  func(s *model.LoanStatus) string { return s.ID },
}

var planDef = Def[model.Plan]{
	Kind:     "plan",
	KeyField: "name",
	Fields: store.FieldTable{
		"name":                   {Column: "name", Type: store.TypeString},
		"fixed_price":            {Column: "fixed_price", Type: store.TypeNumber},
		"monthly_price":          {Column: "monthly_price", Type: store.TypeNumber},
		"max_simultaneous_loans": {Column: "max_simultaneous_loans", Type: store.TypeNumber},
	},
	Key: func(p *model.Plan) string { return p.Name },
	ID:  func(p *model.Plan) string { return p.ID },
}

var planStatusDef = Def[model.PlanStatus]{
	Kind:     "plan_status",
	KeyField: "name",
	Fields: store.FieldTable{
		"name": {Column: "name", Type: store.TypeString},
	},
	Key: func(s *model.PlanStatus) string { return s.Name },
	ID:  func(s *model.PlanStatus) string { return s.ID },
}

var feeTypeDef = Def[model.FeeType]{
	Kind:     "fee_type",
	KeyField: "fee_code",
	Fields: store.FieldTable{
		"fee_code": {Column: "fee_code", Type: store.TypeString},
		"message":  {Column: "message", Type: store.TypeString},
	},
	Key: func(f *model.FeeType) string { return f.FeeCode },
	ID:  func(f *model.FeeType) string { return f.ID },
}

type roleRequest struct {
	Name        string   `json:"name" binding:"required,max=20"`
	Permissions []string `json:"permissions"`
}

type roleUpdate struct {
	Name        *string   `json:"name"`
	Permissions *[]string `json:"permissions"`
}

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

type nameUpdate struct {
	Name *string `json:"name"`
}

type bookStatusRequest struct {
	Name string `json:"book_status" binding:"required,max=20"`
}

type bookStatusUpdate struct {
	Name *string `json:"book_status"`
}

type loanStatusRequest struct {
	Name string `json:"loan_status" binding:"required,max=20"`
}

type loanStatusUpdate struct {
	Name *string `json:"loan_status"`
}

type editorialRequest struct {
	Name    string `json:"name" binding:"required,max=50"`
	Address string `json:"address" binding:"max=200"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type editorialUpdate struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

type authorRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Birthdate string `json:"birthdate" binding:"omitempty,datetime=2006-01-02"`
}

type authorUpdate struct {
	Name      *string `json:"name"`
	LastName  *string `json:"last_name"`
	Birthdate *string `json:"birthdate"`
}

type planRequest struct {
	Name                 string  `json:"name" binding:"required,max=25"`
	FixedPrice           float64 `json:"fixed_price" binding:"min=0"`
	MonthlyPrice         float64 `json:"monthly_price" binding:"min=0"`
	MaxSimultaneousLoans int     `json:"max_simultaneous_loans" binding:"required,min=1"`
}

type planUpdate struct {
	Name                 *string  `json:"name"`
	FixedPrice           *float64 `json:"fixed_price"`
	MonthlyPrice         *float64 `json:"monthly_price"`
	MaxSimultaneousLoans *int     `json:"max_simultaneous_loans"`
}

type feeTypeRequest struct {
	FeeCode string `json:"fee_code" binding:"required,max=20"`
	Message string `json:"message" binding:"required,max=100"`
}

type feeTypeUpdate struct {
	FeeCode *string `json:"fee_code"`
	Message *string `json:"message"`
}

// RegisterAll wires the CRUD routes for every reference-data entity under r.
func RegisterAll(r *gin.RouterGroup, svcs *Services, perm func(string) gin.HandlerFunc) {
	RegisterRoutes(r, "/roles", svcs.Roles, Perms{
		Read:   config.PermReadRole,
		Create: config.PermCreateRole,
		Update: config.PermUpdateRole,
		Delete: config.PermDeleteRole,
	}, perm,
		func(c *gin.Context) (*model.Role, error) {
			var req roleRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.Role{Name: req.Name, Permissions: datatypes.NewJSONSlice(req.Permissions)}, nil
		},
		func(c *gin.Context) (map[string]any, error) {
			var req roleUpdate
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			updates := map[string]any{}
			if req.Name != nil {
				updates["name"] = *req.Name
			}
			if req.Permissions != nil {
				updates["permissions"] = datatypes.NewJSONSlice(*req.Permissions)
			}
			return updates, nil
		})
	registerRolePermissionRoutes(r, svcs.Roles, perm)

	RegisterRoutes(r, "/genders", svcs.Genders, Perms{
		Read:   config.PermReadGender,
		Create: config.PermCreateGender,
		Update: config.PermUpdateGender,
		Delete: config.PermDeleteGender,
	}, perm,
		func(c *gin.Context) (*model.Gender, error) {
			var req nameRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.Gender{Name: req.Name}, nil
		},
		decodeNameUpdate)

	RegisterRoutes(r, "/book_statuses", svcs.BookStatuses, Perms{
		Read:   config.PermReadBookStatus,
		Create: config.PermCreateBookStatus,
		Update: config.PermUpdateBookStatus,
		Delete: config.PermDeleteBookStatus,
	}, perm,
		func(c *gin.Context) (*model.BookStatus, error) {
			var req bookStatusRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.BookStatus{Name: req.Name}, nil
		},
		func(c *gin.Context) (map[string]any, error) {
			var req bookStatusUpdate
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			updates := map[string]any{}
			if req.Name != nil {
				updates["book_status"] = *req.Name
			}
			return updates, nil
		})

	RegisterRoutes(r, "/book_collections", svcs.BookCollections, Perms{
		Read:   config.PermReadBookCollection,
		Create: config.PermCreateBookCollection,
		Update: config.PermUpdateBookCollection,
		Delete: config.PermDeleteBookCollection,
	}, perm,
		func(c *gin.Context) (*model.BookCollection, error) {
			var req nameRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.BookCollection{Name: req.Name}, nil
		},
		decodeNameUpdate)

	RegisterRoutes(r, "/editorials", svcs.Editorials, Perms{
		Read:   config.PermReadEditorial,
		Create: config.PermCreateEditorial,
		Update: config.PermUpdateEditorial,
		Delete: config.PermDeleteEditorial,
	}, perm,
		func(c *gin.Context) (*model.Editorial, error) {
			var req editorialRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.Editorial{Name: req.Name, Address: req.Address, Email: req.Email}, nil
		},
		func(c *gin.Context) (map[string]any, error) {
			var req editorialUpdate
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			updates := map[string]any{}
			if req.Name != nil {
				updates["name"] = *req.Name
			}
			if req.Address != nil {
				updates["address"] = *req.Address
			}
			if req.Email != nil {
				updates["email"] = *req.Email
			}
			return updates, nil
		})

	RegisterRoutes(r, "/authors", svcs.Authors, Perms{
		Read:   config.PermReadAuthor,
		Create: config.PermCreateAuthor,
		Update: config.PermUpdateAuthor,
		Delete: config.PermDeleteAuthor,
	}, perm,
		func(c *gin.Context) (*model.Author, error) {
			var req authorRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			a := &model.Author{Name: req.Name, LastName: req.LastName}
			if req.Birthdate != "" {
				t, err := time.Parse("2006-01-02", req.Birthdate)
				if err != nil {
					return nil, err
				}
				a.Birthdate = &t
			}
			return a, nil
		},
		func(c *gin.Context) (map[string]any, error) {
			var req authorUpdate
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			updates := map[string]any{}
			if req.Name != nil {
				updates["name"] = *req.Name
			}
			if req.LastName != nil {
				updates["last_name"] = *req.LastName
			}
			if req.Birthdate != nil {
				t, err := time.Parse("2006-01-02", *req.Birthdate)
				if err != nil {
					return nil, err
				}
				updates["birthdate"] = t
			}
			return updates, nil
		})

	RegisterRoutes(r, "/loan_statuses", svcs.LoanStatuses, Perms{
		Read:   config.PermReadLoanStatus,
		Create: config.PermCreateLoanStatus,
		Update: config.PermUpdateLoanStatus,
		Delete: config.PermDeleteLoanStatus,
	}, perm,
		func(c *gin.Context) (*model.LoanStatus, error) {
			var req loanStatusRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.LoanStatus{Name: req.Name}, nil
		},
		func(c *gin.Context) (map[string]any, error) {
			var req loanStatusUpdate
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			updates := map[string]any{}
			if req.Name != nil {
				updates["loan_status"] = *req.Name
			}
			return updates, nil
		})

	RegisterRoutes(r, "/plans", svcs.Plans, Perms{
		Read:   config.PermReadPlan,
		Create: config.PermCreatePlan,
		Update: config.PermUpdatePlan,
		Delete: config.PermDeletePlan,
	}, perm,
		func(c *gin.Context) (*model.Plan, error) {
			var req planRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.Plan{
				Name:                 req.Name,
				FixedPrice:           req.FixedPrice,
				MonthlyPrice:         req.MonthlyPrice,
				MaxSimultaneousLoans: req.MaxSimultaneousLoans,
			}, nil
		},
		func(c *gin.Context) (map[string]any, error) {
			var req planUpdate
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			updates := map[string]any{}
			if req.Name != nil {
				updates["name"] = *req.Name
			}
			if req.FixedPrice != nil {
				updates["fixed_price"] = *req.FixedPrice
			}
			if req.MonthlyPrice != nil {
				updates["monthly_price"] = *req.MonthlyPrice
			}
			if req.MaxSimultaneousLoans != nil {
				updates["max_simultaneous_loans"] = *req.MaxSimultaneousLoans
			}
			return updates, nil
		})

	RegisterRoutes(r, "/plan_statuses", svcs.PlanStatuses, Perms{
		Read:   config.PermReadPlanStatus,
		Create: config.PermCreatePlanStatus,
		Update: config.PermUpdatePlanStatus,
		Delete: config.PermDeletePlanStatus,
	}, perm,
		func(c *gin.Context) (*model.PlanStatus, error) {
			var req nameRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.PlanStatus{Name: req.Name}, nil
		},
		decodeNameUpdate)

	RegisterRoutes(r, "/fee_types", svcs.FeeTypes, Perms{
		Read:   config.PermReadFeeType,
		Create: config.PermCreateFeeType,
		Update: config.PermUpdateFeeType,
		Delete: config.PermDeleteFeeType,
	}, perm,
		func(c *gin.Context) (*model.FeeType, error) {
			var req feeTypeRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &model.FeeType{FeeCode: req.FeeCode, Message: req.Message}, nil
		},
		func(c *gin.Context) (map[string]any, error) {
			var req feeTypeUpdate
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			updates := map[string]any{}
			if req.FeeCode != nil {
				updates["fee_code"] = *req.FeeCode
			}
			if req.Message != nil {
				updates["message"] = *req.Message
			}
			return updates, nil
		})
}

func decodeNameUpdate(c *gin.Context) (map[string]any, error) {
	var req nameUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	return updates, nil
}
