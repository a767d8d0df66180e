package client

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
