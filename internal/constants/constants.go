package constants

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
)

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserDeactive UserStatus = "DEACTIVE"
)

type Priority string

const (
	PriorityLow       Priority = "LOW"
	PriorityNormal    Priority = "NORMAL"
	PriorityHigh      Priority = "HIGH"
	PriorityImmediate Priority = "IMMEDIATE"
)

// TaskStatus values carry no enforced ordering; assignees may move a task
// to any of them. StatusTestFailed is terminal for the expiry sweep.
type TaskStatus string

const (
	StatusNew        TaskStatus = "NEW"
	StatusOnHold     TaskStatus = "ON_HOLD"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusImmediate  TaskStatus = "IMMEDIATE"
	StatusDeveloped  TaskStatus = "DEVELOPED"
	StatusInTesting  TaskStatus = "IN_TESTING"
	StatusTested     TaskStatus = "TESTED"
	StatusTestFailed TaskStatus = "TEST_FAILED"
)

func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityImmediate:
		return true
	}
	return false
}

func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case StatusNew, StatusOnHold, StatusInProgress, StatusImmediate,
		StatusDeveloped, StatusInTesting, StatusTested, StatusTestFailed:
		return true
	}
	return false
}

func ValidUserStatus(s string) bool {
	switch UserStatus(s) {
	case UserActive, UserDeactive:
		return true
	}
	return false
}
