package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type Config struct {
	Version     string         `yaml:"version"`
	Mode        string         `yaml:"mode"`
	Addr        string         `yaml:"addr"`
	DB          DatabaseConfig `yaml:"database"`
	SMTP        SMTPConfig     `yaml:"smtp"`
	Certificate Certs          `yaml:"certificate"`

	JWTSecret                 string `yaml:"-"`
	AppMainDomain             string `yaml:"app_main_domain"`
	AdminEmail                string `yaml:"admin_email"`
	AdminPassword             string `yaml:"-"`
	SupportEmail              string `yaml:"support_email"`
	AllowImportingDefaultData bool   `yaml:"allow_importing_default_data"`
}

// LoadConfig reads the yaml file and overlays secrets from the environment
// (optionally sourced from a .env file next to the binary).
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, using system environment")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.AdminPassword = os.Getenv("APP_ADMIN_PASSWORD")
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("ALLOW_IMPORTING_DEFAULT_DATA"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AllowImportingDefaultData = b
		}
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return &cfg, nil
}

// Application constants shared across services.
const (
	DefaultPaginationLimit = 10

	BookTitleMaxLength          = 100
	BookISBNMaxLength           = 30
	BookClassificationMaxLength = 25
	BookSummaryMaxLength        = 500
	BookLanguageMaxLength       = 15
	BookEditionMaxLength        = 10
	BookLocationMaxLength       = 100

	LoanMaxReturnDays                = 30
	LoanMaxReturnDaysAfterRenewal    = 30
	LoanMaxActiveLoansPerUser        = 12
	LoanMaxRenewalsPerLoan           = 5
	ActivePlanMaxSubscriptionDays    = 30
	PasswordResetTokenValidityHours  = 1
	UserMinPasswordLength            = 6
	UserMinAgeRequired               = 16
	UserMaxAgeAllowed                = 130
	NotificationTitleMaxLength       = 50
	NotificationMessageMaxLength     = 500
	NotificationTypeMaxLength        = 20
)

// Permission names checked by the authorization middleware. Role records carry
// a subset of these.
const (
	PermSignup               = "SIGNUP"
	PermSignin               = "SIGNIN"
	PermRequestPasswordReset = "REQUEST_PASSWORD_RESET"
	PermResetPassword        = "RESET_PASSWORD"
	PermImportDefaultData    = "IMPORT_DEFAULT_DATA"

	PermReadActivePlan   = "READ_ACTIVE_PLAN"
	PermCreateActivePlan = "CREATE_ACTIVE_PLAN"
	PermUpdateActivePlan = "UPDATE_ACTIVE_PLAN"
	PermDeleteActivePlan = "DELETE_ACTIVE_PLAN"
	PermCancelActivePlan = "CANCEL_ACTIVE_PLAN"
	PermFinishActivePlan = "FINISH_ACTIVE_PLAN"
	PermRenewActivePlan  = "REQUEST_ACTIVE_PLAN_RENEWAL"

	PermReadAuthor   = "READ_AUTHOR"
	PermCreateAuthor = "CREATE_AUTHOR"
	PermUpdateAuthor = "UPDATE_AUTHOR"
	PermDeleteAuthor = "DELETE_AUTHOR"

	PermReadBook   = "READ_BOOK"
	PermCreateBook = "CREATE_BOOK"
	PermUpdateBook = "UPDATE_BOOK"
	PermDeleteBook = "DELETE_BOOK"

	PermReadBookCollection   = "READ_BOOK_COLLECTION"
	PermCreateBookCollection = "CREATE_BOOK_COLLECTION"
	PermUpdateBookCollection = "UPDATE_BOOK_COLLECTION"
	PermDeleteBookCollection = "DELETE_BOOK_COLLECTION"

	PermReadBookStatus   = "READ_BOOK_STATUS"
	PermCreateBookStatus = "CREATE_BOOK_STATUS"
	PermUpdateBookStatus = "UPDATE_BOOK_STATUS"
	PermDeleteBookStatus = "DELETE_BOOK_STATUS"

	PermReadEditorial   = "READ_EDITORIAL"
	PermCreateEditorial = "CREATE_EDITORIAL"
	PermUpdateEditorial = "UPDATE_EDITORIAL"
	PermDeleteEditorial = "DELETE_EDITORIAL"

	PermReadFeeType   = "READ_FEE_TYPE"
	PermCreateFeeType = "CREATE_FEE_TYPE"
	PermUpdateFeeType = "UPDATE_FEE_TYPE"
	PermDeleteFeeType = "DELETE_FEE_TYPE"

	PermReadGender   = "READ_GENDER"
	PermCreateGender = "CREATE_GENDER"
	PermUpdateGender = "UPDATE_GENDER"
	PermDeleteGender = "DELETE_GENDER"

	PermReadLoan   = "READ_LOAN"
	PermCreateLoan = "CREATE_LOAN"
	PermUpdateLoan = "UPDATE_LOAN"
	PermDeleteLoan = "DELETE_LOAN"
	PermRenewLoan  = "REQUEST_LOAN_RENEWAL"
	PermFinishLoan = "FINISH_LOAN"

	PermReadLoanStatus   = "READ_LOAN_STATUS"
	PermCreateLoanStatus = "CREATE_LOAN_STATUS"
	PermUpdateLoanStatus = "UPDATE_LOAN_STATUS"
	PermDeleteLoanStatus = "DELETE_LOAN_STATUS"

	PermReadNotification          = "READ_NOTIFICATION"
	PermCreateNotification        = "CREATE_NOTIFICATION"
	PermCreateNotificationForAll  = "CREATE_NOTIFICATIONS_FOR_ALL_USERS"
	PermUpdateNotification        = "UPDATE_NOTIFICATION"
	PermDeleteNotification        = "DELETE_NOTIFICATION"
	PermMarkNotificationAsRead    = "MARK_NOTIFICATION_AS_READ"

	PermReadPlan   = "READ_PLAN"
	PermCreatePlan = "CREATE_PLAN"
	PermUpdatePlan = "UPDATE_PLAN"
	PermDeletePlan = "DELETE_PLAN"

	PermReadPlanStatus   = "READ_PLAN_STATUS"
	PermCreatePlanStatus = "CREATE_PLAN_STATUS"
	PermUpdatePlanStatus = "UPDATE_PLAN_STATUS"
	PermDeletePlanStatus = "DELETE_PLAN_STATUS"

	PermReadRole             = "READ_ROLE"
	PermCreateRole           = "CREATE_ROLE"
	PermUpdateRole           = "UPDATE_ROLE"
	PermDeleteRole           = "DELETE_ROLE"
	PermAddPermissionToRole  = "ADD_PERMISSION_TO_ROLE"
	PermRemovePermissionRole = "REMOVE_PERMISSION_FROM_ROLE"

	PermReadUser   = "READ_USER"
	PermCreateUser = "CREATE_USER"
	PermUpdateUser = "UPDATE_USER"
	PermDeleteUser = "DELETE_USER"
)

// AllPermissions is the full catalog, used when seeding the owner role.
func AllPermissions() []string {
	return []string{
		PermSignup, PermSignin, PermRequestPasswordReset, PermResetPassword, PermImportDefaultData,
		PermReadActivePlan, PermCreateActivePlan, PermUpdateActivePlan, PermDeleteActivePlan,
		PermCancelActivePlan, PermFinishActivePlan, PermRenewActivePlan,
		PermReadAuthor, PermCreateAuthor, PermUpdateAuthor, PermDeleteAuthor,
		PermReadBook, PermCreateBook, PermUpdateBook, PermDeleteBook,
		PermReadBookCollection, PermCreateBookCollection, PermUpdateBookCollection, PermDeleteBookCollection,
		PermReadBookStatus, PermCreateBookStatus, PermUpdateBookStatus, PermDeleteBookStatus,
		PermReadEditorial, PermCreateEditorial, PermUpdateEditorial, PermDeleteEditorial,
		PermReadFeeType, PermCreateFeeType, PermUpdateFeeType, PermDeleteFeeType,
		PermReadGender, PermCreateGender, PermUpdateGender, PermDeleteGender,
		PermReadLoan, PermCreateLoan, PermUpdateLoan, PermDeleteLoan, PermRenewLoan, PermFinishLoan,
		PermReadLoanStatus, PermCreateLoanStatus, PermUpdateLoanStatus, PermDeleteLoanStatus,
		PermReadNotification, PermCreateNotification, PermCreateNotificationForAll,
		PermUpdateNotification, PermDeleteNotification, PermMarkNotificationAsRead,
		PermReadPlan, PermCreatePlan, PermUpdatePlan, PermDeletePlan,
		PermReadPlanStatus, PermCreatePlanStatus, PermUpdatePlanStatus, PermDeletePlanStatus,
		PermReadRole, PermCreateRole, PermUpdateRole, PermDeleteRole,
		PermAddPermissionToRole, PermRemovePermissionRole,
		PermReadUser, PermCreateUser, PermUpdateUser, PermDeleteUser,
	}
}
