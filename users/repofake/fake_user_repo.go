package fakeuserrepo

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/tollway-portal/internal/errors"
	"github.com/jrsteele09/tollway-portal/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	users    map[string]*users.User
	emailIds map[string]string // email to user id
	lock     sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users:    make(map[string]*users.User),
		emailIds: make(map[string]string),
	}
}

func (ur *FakeUserRepo) Upsert(user *users.User) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now().UTC()
	}
	user.Email = users.NormaliseEmail(user.Email)
	copied := *user
	ur.users[user.ID] = &copied
	ur.emailIds[user.Email] = user.ID
	return nil
}

func (ur *FakeUserRepo) GetByEmail(email string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	userID, ok := ur.emailIds[users.NormaliseEmail(email)]
	if !ok {
		return nil, errors.ErrNotFound
	}
	copied := *ur.users[userID]
	return &copied, nil
}

func (ur *FakeUserRepo) SetLastLogin(email string) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	userID, ok := ur.emailIds[users.NormaliseEmail(email)]
	if !ok {
		return errors.ErrNotFound
	}
	ur.users[userID].LastLogin = time.Now().UTC()
	return nil
}
