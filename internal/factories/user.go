package factories

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"pricepilot/internal/models"
)

var userRoles = []string{models.RoleBuyer, models.RoleSupplier}

type UserFactory struct{}

// CreateUser generates a verified demo account. The password hash is a
// placeholder; seeded accounts are not meant for login.
func (uf *UserFactory) CreateUser() models.User {
	return models.User{
		Email:          uuid.NewString() + "@example.com",
		FullName:       fake.Person().Name(),
		HashedPassword: "!seeded",
		Role:           userRoles[rand.Intn(len(userRoles))],
		IsVerified:     true,
		JoinDate:       time.Now().AddDate(0, -rand.Intn(24), 0),
	}
}
