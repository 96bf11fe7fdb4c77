package validation

import "github.com/JMURv/device-sessions/internal/dto"

func RevokeDevices(req *dto.RevokeDevicesRequest) error {
	if len(req.DeviceIDs) == 0 {
		return ErrDeviceSelectionEmpty
	}
	return nil
}

func BulkRevoke(req *dto.BulkRevokeRequest) error {
	if len(req.UserIDs) == 0 {
		return ErrUserSelectionEmpty
	}
	return nil
}
