package board

import "errors"

var ErrBoardNotFound = errors.New("board not found")
