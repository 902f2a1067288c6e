package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyUsername   = "username"
	ContextKeyUserRole   = "user_role"
	ContextKeyTeamMember = "is_team_member"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableUsers            = "users"
	TableProjects         = "projects"
	TableProjectMembers   = "project_members"
	TableTechCategories   = "technology_categories"
	TableTechnologies     = "technologies"
	TableTickets          = "tickets"
	TableTicketTechnology = "ticket_technologies"
	TableTicketAssignees  = "ticket_assigned_users"
	TableBugReports       = "bug_reports"
	TableFeatureRequests  = "feature_requests"
	TableTasks            = "tasks"
	TableAttachments      = "attachments"
	TableTicketSequences  = "ticket_sequences"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)
