package listing

import "errors"

var ErrCompanyNameRequired = errors.New("company name is required")
