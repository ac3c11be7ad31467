package engagement

import "errors"

var ErrInvalidStatusValue = errors.New("invalid progress status value")
