package ingest

import "errors"

var ErrInvalidSettingID = errors.New("invalid report setting id")
