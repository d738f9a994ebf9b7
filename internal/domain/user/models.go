// user holds the read side of user accounts. Registration, login and password
// handling live in the auth service that fronts this one; we only ever resolve
// ids that other records point at.
package user

import (
	"context"
	"fmt"

	"github.com/duelboard/duelboard/internal/domain/metadata"
)

// Id of a persisted user
type Id string

type Name string

// A user as persisted by the auth service
type User struct {
	ID       Id
	Name     Name
	Email    string
	About    string
	Metadata metadata.Metadata
}

// A Service that resolves user ids.
type Service interface {
	// Get retrieves a User by Id, erroring out with NotFound if
	// no such user exists
	Get(ctx context.Context, id Id) (*User, error)
}

// NotFound is returned when no user exists for a given Id
type NotFound struct {
	ID Id
}

func (e NotFound) Error() string {
	return fmt.Sprintf("Could not find user [%v]", e.ID)
}
