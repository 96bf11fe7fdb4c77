package validation

import "errors"

var ErrDeviceSelectionEmpty = errors.New("no devices selected")
var ErrUserSelectionEmpty = errors.New("no users selected")
