package model

import (
	"time"

	"gorm.io/datatypes"
)

type Role struct {
	Base
	Name        string                      `gorm:"size:20;uniqueIndex" json:"name"`
	Permissions datatypes.JSONSlice[string] `json:"permissions"`
}

func (Role) TableName() string { return "roles" }

type Gender struct {
	Base
	Name string `gorm:"size:10;uniqueIndex" json:"name"`
}

func (Gender) TableName() string { return "genders" }

type BookStatus struct {
	Base
	Name string `gorm:"column:book_status;size:20;uniqueIndex" json:"book_status"`
}

func (BookStatus) TableName() string { return "book_statuses" }

type BookCollection struct {
	Base
	Name string `gorm:"size:20;uniqueIndex" json:"name"`
}

func (BookCollection) TableName() string { return "book_collections" }

type Editorial struct {
	Base
	Name    string `gorm:"size:50;uniqueIndex" json:"name"`
	Address string `gorm:"size:200" json:"address"`
	Email   string `gorm:"size:50" json:"email"`
}

func (Editorial) TableName() string { return "editorials" }

type Author struct {
	Base
	Name      string     `gorm:"size:50" json:"name"`
	LastName  string     `gorm:"size:50" json:"last_name"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

func (Author) TableName() string { return "authors" }

type LoanStatus struct {
	Base
	Name string `gorm:"column:loan_status;size:20;uniqueIndex" json:"loan_status"`
}

func (LoanStatus) TableName() string { return "loan_statuses" }

type Plan struct {
	Base
	Name                 string  `gorm:"size:25;uniqueIndex" json:"name"`
	FixedPrice           float64 `json:"fixed_price"`
	MonthlyPrice         float64 `json:"monthly_price"`
	MaxSimultaneousLoans int     `json:"max_simultaneous_loans"`
}

func (Plan) TableName() string { return "plans" }

type PlanStatus struct {
	Base
	Name string `gorm:"size:20;uniqueIndex" json:"name"`
}

func (PlanStatus) TableName() string { return "plan_statuses" }

type FeeType struct {
	Base
	FeeCode string `gorm:"size:20;uniqueIndex" json:"fee_code"`
	Message string `gorm:"size:100" json:"message"`
}

func (FeeType) TableName() string { return "fee_types" }
