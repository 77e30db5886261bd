package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskdesk.com/taskdesk/internal/constants"
	model "taskdesk.com/taskdesk/internal/models"
	repository "taskdesk.com/taskdesk/internal/repositories"
)

const (
	testGrace  = 30 * time.Minute
	testSecret = "test-signing-key"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Company{}, &model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	// The shared in-memory database outlives a single test; start from
	// empty tables so unique columns do not collide across tests.
	for _, table := range []string{"employees_tasks", "tasks", "companies", "users"} {
		db.Exec("DELETE FROM " + table)
	}

	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type fixture struct {
	db        *gorm.DB
	users     *repository.UserRepository
	companies *repository.CompanyRepository
	tasks     *repository.TaskRepository

	auth    *AuthService
	company *CompanyService
	task    *TaskService
	sweep   *SweepService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	companies := repository.NewCompanyRepository(db)
	tasks := repository.NewTaskRepository(db)

	logger := testLogger()

	return &fixture{
		db:        db,
		users:     users,
		companies: companies,
		tasks:     tasks,
		auth:      NewAuthService(logger, users, []byte(testSecret), 24*time.Hour),
		company:   NewCompanyService(logger, companies, users),
		task:      NewTaskService(logger, tasks, users, testGrace),
		sweep:     NewSweepService(logger, tasks, nil, time.Minute),
	}
}

// newAdminWithCompany registers an admin and creates their company,
// returning the admin refreshed so CompanyID is populated.
func (f *fixture) newAdminWithCompany(t *testing.T, email, companyName, phone, address string) *model.User {
	t.Helper()
	ctx := context.Background()

	admin, err := f.auth.Register(ctx, RegisterParams{
		Name:     "Admin",
		Surname:  "User",
		Email:    email,
		Username: "admin",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("failed to register admin: %v", err)
	}

	_, err = f.company.Create(ctx, admin, companyName, phone, address)
	if err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	refreshed, err := f.users.FindByID(ctx, admin.ID)
	if err != nil {
		t.Fatalf("failed to refresh admin: %v", err)
	}
	return refreshed
}

func (f *fixture) newEmployee(t *testing.T, admin *model.User, email string) *model.User {
	t.Helper()

	employee, err := f.company.AddEmployee(context.Background(), admin, AddEmployeeParams{
		Name:     "Employee",
		Surname:  "User",
		Email:    email,
		Username: "employee",
		Password: "password1",
		Status:   constants.UserActive,
	})
	if err != nil {
		t.Fatalf("failed to add employee: %v", err)
	}
	return employee
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}
