package dto

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	Hour        string   `json:"hour"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	EmployeeIDs []string `json:"employee_ids"`
}

// UpdateTaskRequest is the admin full-edit payload; it shares the
// create shape but the validator relaxes required-ness.
type UpdateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	Hour        string   `json:"hour"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	EmployeeIDs []string `json:"employee_ids"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type ListTasksQuery struct {
	Page        int      `query:"page"`
	Limit       int      `query:"limit"`
	Status      string   `query:"status"`
	Priority    string   `query:"priority"`
	Title       string   `query:"title"`
	From        string   `query:"deadline_from"`
	To          string   `query:"deadline_to"`
	AssigneeIDs []string `query:"assignee_ids"`
}
