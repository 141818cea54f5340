package banner

import "errors"

var ErrBannerNotFound = errors.New("banner not found")
