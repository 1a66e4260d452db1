package model

import "errors"

var (
	// Auth related errors
	ErrInvalidInput       = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Reference data errors
	ErrPokemonNotFound = errors.New("pokemon not found")
	ErrItemNotFound    = errors.New("item not found")
)
