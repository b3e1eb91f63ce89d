package strategy

import "github.com/arloliu/repairtime/types"

// ErrOverflow indicates that a ceiling does not fit in int64.
var ErrOverflow = types.ErrOverflow
