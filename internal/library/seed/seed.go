package seed

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/refdata"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/users"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

// Importer loads the reference records a fresh deployment needs. Every
// insert is skipped when a record with the same natural key already exists,
// so running the import twice is harmless.
type Importer struct {
	cfg     *config.Config
	refdata *refdata.Services
	users   *store.Store[model.User]
}

func NewImporter(cfg *config.Config, ref *refdata.Services, db *gorm.DB) *Importer {
	return &Importer{cfg: cfg, refdata: ref, users: store.New[model.User](db)}
}

var defaultGenders = []string{"Male", "Female", "Other"}

var defaultBookStatuses = []string{"AVAILABLE", "LENT", "RESERVED", "IN_REPAIR", "RETIRED"}

var defaultLoanStatuses = []string{"ACTIVE", "PICKED_UP", "FINISHED"}

var defaultPlanStatuses = []string{"ACTIVE", "CANCELED", "FINISHED"}

var defaultBookCollections = []string{"General", "Literature", "Science", "Technology", "History", "Children"}

var defaultFeeTypes = []model.FeeType{
	{FeeCode: "LATE_RETURN", Message: "The book was returned after its due date"},
	{FeeCode: "DAMAGED_BOOK", Message: "The book was returned with damage"},
	{FeeCode: "LOST_BOOK", Message: "The book was reported as lost"},
}

// clientPermissions is the everyday member surface: browsing, self-service
// loans and subscriptions, and their own notifications.
var clientPermissions = []string{
	config.PermReadBook,
	config.PermReadAuthor,
	config.PermReadEditorial,
	config.PermReadBookCollection,
	config.PermReadBookStatus,
	config.PermReadPlan,
	config.PermReadLoan,
	config.PermCreateLoan,
	config.PermRenewLoan,
	config.PermReadActivePlan,
	config.PermCreateActivePlan,
	config.PermCancelActivePlan,
	config.PermRenewActivePlan,
	config.PermReadNotification,
	config.PermMarkNotificationAsRead,
	config.PermReadUser,
	config.PermUpdateUser,
}

// Run imports the default data set. It fails up front when the deployment
// does not allow importing.
func (im *Importer) Run(ctx context.Context) error {
	if !im.cfg.AllowImportingDefaultData {
		return apierr.ImportingDefaultDataUnauthorized()
	}
	log.Println("[INFO] importing default data")

	if err := im.seedRoles(ctx); err != nil {
		return err
	}
	for _, name := range defaultGenders {
		if err := seedOne(ctx, im.refdata.Genders, name, &model.Gender{Name: name}); err != nil {
			return err
		}
	}
	for _, name := range defaultBookStatuses {
		if err := seedOne(ctx, im.refdata.BookStatuses, name, &model.BookStatus{Name: name}); err != nil {
			return err
		}
	}
	for _, name := range defaultLoanStatuses {
		if err := seedOne(ctx, im.refdata.LoanStatuses, name, &model.LoanStatus{Name: name}); err != nil {
			return err
		}
	}
	for _, name := range defaultPlanStatuses {
		if err := seedOne(ctx, im.refdata.PlanStatuses, name, &model.PlanStatus{Name: name}); err != nil {
			return err
		}
	}
	for _, name := range defaultBookCollections {
		if err := seedOne(ctx, im.refdata.BookCollections, name, &model.BookCollection{Name: name}); err != nil {
			return err
		}
	}
	for i := range defaultFeeTypes {
		ft := defaultFeeTypes[i]
		if err := seedOne(ctx, im.refdata.FeeTypes, ft.FeeCode, &ft); err != nil {
			return err
		}
	}
	return im.seedAdmin(ctx)
}

// seedOne inserts a record unless its natural key is already present.
func seedOne[T any](ctx context.Context, svc *refdata.Service[T], key string, rec *T) error {
	existing, err := svc.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	log.Printf("[INFO] creating %q", key)
	_, err = svc.Create(ctx, rec)
	return err
}

func (im *Importer) seedRoles(ctx context.Context) error {
	roles := []model.Role{
		{Name: "Owner", Permissions: datatypes.NewJSONSlice(config.AllPermissions())},
		{Name: users.DefaultRoleName, Permissions: datatypes.NewJSONSlice(clientPermissions)},
	}
	for i := range roles {
		if err := seedOne(ctx, im.refdata.Roles, roles[i].Name, &roles[i]); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) seedAdmin(ctx context.Context) error {
	existing, err := im.users.Filter(ctx, store.Cond{
		Query: "username = ?",
		Args:  []any{"Admin"},
	}, store.Query{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) != 0 {
		return nil
	}
	gender, err := im.refdata.Genders.FindByKey(ctx, "Other")
	if err != nil {
		return err
	}
	role, err := im.refdata.Roles.FindByKey(ctx, "Owner")
	if err != nil {
		return err
	}
	if gender == nil || role == nil {
		return apierr.Internal("default gender or role missing; run the import again")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(im.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	birthdate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	log.Println("[INFO] creating admin user")
	return im.users.Create(ctx, &model.User{
		Username:     "Admin",
		Name:         "Aura",
		LastName:     "Vindex",
		Email:        im.cfg.AdminEmail,
		Biography:    "Administrator of AURA VINDEX.",
		GenderID:     gender.ID,
		Birthdate:    &birthdate,
		RoleID:       role.ID,
		PasswordHash: string(hash),
	})
}
