package dto

import md "github.com/JMURv/device-sessions/internal/models"

type PaginatedDeviceResponse struct {
	Data        []md.CurrentDevice `json:"data"`
	Count       int64              `json:"count"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	HasNextPage bool               `json:"hasNextPage"`
}
