// Package auth aísla la comparación de credenciales detrás de una
// interfaz, de modo que el esquema (texto plano heredado o bcrypt) se
// elige al arrancar sin tocar los handlers.
package auth

import "golang.org/x/crypto/bcrypt"

type CredentialScheme interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// Plaintext reproduce el comportamiento heredado de la base existente:
// la credencial se guarda y compara tal cual.
type Plaintext struct{}

func (Plaintext) Hash(password string) (string, error) { return password, nil }

func (Plaintext) Verify(stored, password string) bool { return stored == password }

// Bcrypt guarda la credencial como hash bcrypt.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (b Bcrypt) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// SchemeFor resuelve el esquema configurado; cualquier valor desconocido
// cae al heredado.
func SchemeFor(name string) CredentialScheme {
	if name == "bcrypt" {
		return Bcrypt{}
	}
	return Plaintext{}
}
