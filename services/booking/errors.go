package booking

import "aircnc/database/repository"

// ErrInvalidID is returned for identifiers the store cannot parse.
var ErrInvalidID = repository.ErrInvalidID
