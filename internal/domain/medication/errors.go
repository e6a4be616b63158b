package medication

import "errors"

var ErrNameRequired = errors.New("medication name is required")
