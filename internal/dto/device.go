package dto

import "github.com/google/uuid"

type DeviceRequest struct {
	IP string `json:"ip"`
	UA string `json:"ua"`
}

type RevokeDevicesRequest struct {
	DeviceIDs []uint64 `json:"device_ids" validate:"required,min=1"`
}

type BulkRevokeRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1"`
}

// RevocationResult is the structured outcome of any revocation flow.
// Validation problems surface here as Success=false, never as errors.
type RevocationResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	RevokedCount int64  `json:"revoked_count"`
	DeletedCount int    `json:"deleted_count"`
	Logout       bool   `json:"logout"`
}

type BatchResult struct {
	Successes int      `json:"successes"`
	Failures  int      `json:"failures"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
}

type LinkedIPsResponse struct {
	IPAddresses string `json:"ip_addresses"`
}
