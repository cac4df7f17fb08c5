package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 24
)

// GenerateID retorna um identificador aleatório e opaco para um registro
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
