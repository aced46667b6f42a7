package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el repositorio sobre el Store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create inserta el usuario respetando la unicidad de email y username sin distinguir mayúsculas.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if fold(u.Email) == fold(user.Email) {
			return domain.ErrEmailAlreadyExists
		}
		if fold(u.Username) == fold(user.Username) {
			return domain.ErrUsernameAlreadyExists
		}
	}
	r.s.users[user.ID] = copyUser(user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return fold(u.Email) == fold(email) }), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return fold(u.Username) == fold(username) }), nil
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

// ListActiveByRole usuarios activos con el rol, ordenados por username.
func (r *UserRepo) ListActiveByRole(_ context.Context, role string) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.User
	for _, u := range r.s.users {
		if u.IsActive && u.Role == role {
			list = append(list, copyUser(u))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return list, nil
}

// SetActive activa o desactiva un usuario (no hay endpoint; lo usan seeding y tests).
func (r *UserRepo) SetActive(id string, active bool) bool {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return false
	}
	u.IsActive = active
	return true
}

func (r *UserRepo) find(match func(*entity.User) bool) *entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if match(u) {
			return copyUser(u)
		}
	}
	return nil
}
