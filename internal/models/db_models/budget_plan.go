package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AllocationPolicy string

const (
	PolicyEven     AllocationPolicy = "even"
	PolicyWeighted AllocationPolicy = "weighted"
)

// BudgetPlan is the persisted ledger for one trip: the per-category split of
// a total budget plus every expense logged against it.
type BudgetPlan struct {
	BaseModel
	TotalBudgetINR int64
	Policy         AllocationPolicy `gorm:"size:16"`
	Weights        datatypes.JSON   `gorm:"type:jsonb;default:'{}'"`

	Items    []BudgetItem    `gorm:"foreignKey:PlanID"`
	Expenses []ExpenseRecord `gorm:"foreignKey:PlanID"`
}

type BudgetItem struct {
	BaseModel
	PlanID    uuid.UUID `gorm:"type:uuid;index"`
	Category  string    `gorm:"size:16"`
	AmountINR int64
}

// ExpenseRecord rows are append-only: created when the user logs a spend and
// never updated or deleted afterwards.
type ExpenseRecord struct {
	BaseModel
	PlanID    uuid.UUID `gorm:"type:uuid;index"`
	Category  string    `gorm:"size:16"`
	AmountINR int64
	SpentAt   int64
}
