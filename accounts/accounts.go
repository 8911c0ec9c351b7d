// Package accounts owns the registered-user directory and credential
// checks. The privileged admin identity is a fixed credential checked
// before the directory and never stored in it.
package accounts

import (
	"errors"
	"sync"

	"github.com/Ricardo-1112/shuiba-order/config"
	"github.com/Ricardo-1112/shuiba-order/ids"
	"github.com/Ricardo-1112/shuiba-order/models"
	"github.com/Ricardo-1112/shuiba-order/pkg/logger"
	"github.com/Ricardo-1112/shuiba-order/store"
)

var (
	ErrDuplicateEmail     = errors.New("邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
)

// Directory is the user store. Passwords are opaque strings compared
// exactly; hashing is out of scope for this counter demo.
type Directory struct {
	mu     sync.RWMutex
	store  store.Store
	logger *logger.Logger
	admin  config.AdminCredential
	users  []models.User
}

// New loads the persisted directory.
func New(st store.Store, log *logger.Logger, admin config.AdminCredential) (*Directory, error) {
	d := &Directory{
		store:  st,
		logger: log.WithComponent("accounts"),
		admin:  admin,
	}
	if err := st.Load(store.CollectionUsers, &d.users); err != nil {
		return nil, err
	}
	return d, nil
}

// Register creates a directory entry and returns it as the authenticated
// session. The privileged email counts as taken even though it is not a
// directory record.
func (d *Directory) Register(email, password string) (*models.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if email == d.admin.Email {
		return nil, ErrDuplicateEmail
	}
	for _, u := range d.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	u := models.User{
		ID:       ids.New("u"),
		Email:    email,
		Password: password,
	}
	d.users = append(d.users, u)
	if err := d.store.Save(store.CollectionUsers, d.users); err != nil {
		d.users = d.users[:len(d.users)-1]
		return nil, err
	}
	d.logger.Info("User registered", "user_id", u.ID, "email", u.Email)
	return &models.Session{UserID: u.ID, Email: u.Email}, nil
}

// Authenticate checks the privileged credential first, then the directory.
func (d *Directory) Authenticate(email, password string) (*models.Session, error) {
	if email == d.admin.Email && password == d.admin.Password {
		return &models.Session{UserID: "admin", Email: email, IsAdmin: true}, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Email == email && u.Password == password {
			return &models.Session{UserID: u.ID, Email: u.Email}, nil
		}
	}
	return nil, ErrInvalidCredentials
}
