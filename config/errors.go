package config

import "errors"

// ErrInvalidConfig indicates a value outside its allowed domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// ErrUnknownKey indicates a key the Config type does not define.
var ErrUnknownKey = errors.New("config: unknown key")
