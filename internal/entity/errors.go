package entity

import "errors"

var (
	// ErrNotFound cobre ids inexistentes (prospect, produto, campanha).
	ErrNotFound = errors.New("not found")

	// ErrNoDocument indica que a coleção de conteúdo ainda não foi semeada.
	ErrNoDocument = errors.New("content document does not exist")
)
