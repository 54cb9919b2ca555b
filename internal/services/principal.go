// internal/services/principal.go
package services

import "github.com/inventra/inventory-backend/internal/models"

// Principal is the already-authenticated caller of a service operation.
type Principal struct {
	UserID uint
	Login  string
	Name   string
	Role   models.Role
}

func PrincipalFromUser(user *models.User) *Principal {
	return &Principal{
		UserID: user.ID,
		Login:  user.Login,
		Name:   user.Name,
		Role:   user.Role,
	}
}

func requireAuthenticated(p *Principal) error {
	if p == nil {
		return ErrUnauthenticated
	}
	return nil
}

func requireRole(p *Principal, allowed ...models.Role) error {
	if err := requireAuthenticated(p); err != nil {
		return err
	}
	for _, role := range allowed {
		if p.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

var categoryWriters = []models.Role{models.RoleAdmin}
