package domain

// EnforceRequest asks whether a role may perform action on resource inside one tenant.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	TenantID string `json:"tenant_id" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
