package patients

import "errors"

var errEmptyPatientPayload = errors.New("patient payload is empty")
