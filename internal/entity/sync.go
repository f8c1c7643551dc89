package entity

// SyncResult holds the CRM ids touched while reconciling one job.
type SyncResult struct {
	DealID          string
	DealCreated     bool
	CompanyID       string
	ParentCompanyID string
	ContactID       string
}
