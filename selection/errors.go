package selection

import "errors"

var (
	// ErrNoCriteria is returned when neither category slugs nor a word
	// list were supplied.
	ErrNoCriteria = errors.New("no selection criteria: need category slugs or a word list")
)
