package client

import "errors"

var ErrAppNotConfigured = errors.New("client app requires storages and ui")
