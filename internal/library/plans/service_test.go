package plans

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
)

func planAt(created, due time.Time, returned *time.Time) model.ActivePlan {
	p := model.ActivePlan{ReturnDate: due, ReturnedDate: returned}
	p.CreatedAt = created
	return p
}

func Test_Conflicts(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.April, d, 0, 0, 0, 0, time.UTC)
	}
	returned := day(28)

	assert.True(t, conflicts(planAt(day(1), day(30), nil), day(2), day(20)))
	assert.False(t, conflicts(planAt(day(10), day(30), nil), day(2), day(20)))
	assert.False(t, conflicts(planAt(day(1), day(5), nil), day(6), day(20)))
	assert.True(t, conflicts(planAt(day(1), day(5), &returned), day(6), day(20)))
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Plan{},
		&model.PlanStatus{},
		&model.ActivePlan{},
	))
	return db
}

type planFixture struct {
	svc      *Service
	member   model.User
	other    model.User
	plan     model.Plan
	active   model.PlanStatus
	canceled model.PlanStatus
}

func newPlanFixture(t *testing.T) (*gorm.DB, *planFixture) {
	t.Helper()
	db := newTestDB(t)
	f := &planFixture{
		svc:      NewService(db),
		member:   model.User{Username: "member", Email: "member@example.com"},
		other:    model.User{Username: "visitor", Email: "visitor@example.com"},
		plan:     model.Plan{Name: "Basic", MaxSimultaneousLoans: 3},
		active:   model.PlanStatus{Name: ActiveStatusName},
		canceled: model.PlanStatus{Name: CanceledStatusName},
	}
	for _, rec := range []any{&f.member, &f.other, &f.plan, &f.active, &f.canceled} {
		require.NoError(t, db.Create(rec).Error)
	}
	return db, f
}

func Test_Service_Create_OverlappingActiveSubscriptionRejected(t *testing.T) {
	_, f := newPlanFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, &model.ActivePlan{
		UserID:       f.member.ID,
		PlanID:       f.plan.ID,
		PlanStatusID: f.active.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 20),
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	_, err = f.svc.Create(ctx, &model.ActivePlan{
		UserID:       f.member.ID,
		PlanID:       f.plan.ID,
		PlanStatusID: f.active.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 10),
	})
	require.Error(t, err)

	var api *apierr.Error
	require.ErrorAs(t, err, &api)
	assert.Equal(t, apierr.CodeNotAvailable, api.Code)
	assert.Equal(t, "plan", api.Kind)

	second, err := f.svc.Create(ctx, &model.ActivePlan{
		UserID:       f.other.ID,
		PlanID:       f.plan.ID,
		PlanStatusID: f.active.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 20),
	})
	require.NoError(t, err)
	require.NotNil(t, second)
}

func Test_Service_Create_IgnoresNonActiveSubscriptions(t *testing.T) {
	db, f := newPlanFixture(t)
	ctx := context.Background()

	old := model.ActivePlan{
		UserID:       f.member.ID,
		PlanID:       f.plan.ID,
		PlanStatusID: f.canceled.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 20),
	}
	require.NoError(t, db.Create(&old).Error)

	created, err := f.svc.Create(ctx, &model.ActivePlan{
		UserID:       f.member.ID,
		PlanID:       f.plan.ID,
		PlanStatusID: f.active.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 20),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
}
