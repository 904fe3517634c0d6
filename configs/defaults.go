package configs

import _ "embed"

// DefaultProperties is the built-in application.yml.
//
//go:embed application.yml
var DefaultProperties []byte

// DefaultMessages is the built-in messages.yml.
//
//go:embed messages.yml
var DefaultMessages []byte
