package ports

import (
	"shelter-admin-api/internal/domain/person"
)

type Auth interface {
	GenerateToken(p *person.Person, requestPassword string) (string, error)
}
