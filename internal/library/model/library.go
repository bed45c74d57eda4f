package model

import (
	"time"

	"gorm.io/datatypes"
)

type Book struct {
	Base
	Title            string                      `gorm:"size:100" json:"title"`
	ISBN             string                      `gorm:"column:isbn;size:30" json:"isbn"`
	Classification   string                      `gorm:"size:25;index" json:"classification"`
	Summary          string                      `gorm:"size:500" json:"summary"`
	EditorialID      string                      `gorm:"size:26;index" json:"-"`
	Editorial        *Editorial                  `json:"editorial,omitempty"`
	Language         string                      `gorm:"size:15" json:"language"`
	Edition          string                      `gorm:"size:10" json:"edition"`
	Sample           int                         `json:"sample"`
	Location         string                      `gorm:"size:100" json:"location"`
	BookStatusID     string                      `gorm:"size:26;index" json:"-"`
	BookStatus       *BookStatus                 `json:"book_status,omitempty"`
	Genres           datatypes.JSONSlice[string] `json:"genres"`
	BookCollectionID string                      `gorm:"size:26;index" json:"-"`
	BookCollection   *BookCollection             `json:"book_collection,omitempty"`
	Authors          []Author                    `gorm:"many2many:book_authors" json:"authors,omitempty"`
	BookImg          string                      `gorm:"size:255" json:"book_img"`
}

func (Book) TableName() string { return "books" }

type Loan struct {
	Base
	UserID       string      `gorm:"size:26;index" json:"-"`
	User         *User       `json:"user,omitempty"`
	BookID       string      `gorm:"size:26;index" json:"-"`
	Book         *Book       `json:"book,omitempty"`
	LoanStatusID string      `gorm:"size:26;index" json:"-"`
	LoanStatus   *LoanStatus `json:"loan_status,omitempty"`
	ReturnDate   time.Time   `json:"return_date"`
	ReturnedDate *time.Time  `json:"returned_date,omitempty"`
	Renewals     int         `json:"renewals"`
}

func (Loan) TableName() string { return "loans" }

type ActivePlan struct {
	Base
	UserID       string      `gorm:"size:26;index" json:"-"`
	User         *User       `json:"user,omitempty"`
	PlanID       string      `gorm:"size:26;index" json:"-"`
	Plan         *Plan       `json:"plan,omitempty"`
	PlanStatusID string      `gorm:"size:26;index" json:"-"`
	PlanStatus   *PlanStatus `json:"plan_status,omitempty"`
	ReturnDate   time.Time   `json:"return_date"`
	ReturnedDate *time.Time  `json:"returned_date,omitempty"`
}

func (ActivePlan) TableName() string { return "active_plans" }

type User struct {
	Base
	Username     string     `gorm:"size:30;index" json:"username"`
	Name         string     `gorm:"size:30" json:"name"`
	LastName     string     `gorm:"size:30" json:"last_name"`
	Email        string     `gorm:"size:50;index" json:"email"`
	Biography    string     `gorm:"size:300" json:"biography"`
	GenderID     string     `gorm:"size:26;index" json:"-"`
	Gender       *Gender    `json:"gender,omitempty"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
	UserImg      string     `gorm:"size:255" json:"user_img"`
	RoleID       string     `gorm:"size:26;index" json:"-"`
	Role         *Role      `json:"role,omitempty"`
	PasswordHash string     `gorm:"size:191" json:"-"`

	ResetToken        *string    `gorm:"size:36;index" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

type Notification struct {
	Base
	SenderID         string `gorm:"size:26;index" json:"-"`
	Sender           *User  `json:"sender,omitempty"`
	ReceiverID       string `gorm:"size:26;index" json:"-"`
	Receiver         *User  `json:"receiver,omitempty"`
	Title            string `gorm:"size:50" json:"title"`
	Message          string `gorm:"size:500" json:"message"`
	NotificationType string `gorm:"size:20" json:"notification_type"`
	IsRead           bool   `json:"is_read"`
}

func (Notification) TableName() string { return "notifications" }
