package workforce

import "errors"

var ErrMissingAccountID = errors.New("missing account id")
