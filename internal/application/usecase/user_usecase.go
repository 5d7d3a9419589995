package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del sistema (solo ADMIN).
type UserUseCase struct {
	repo       repository.UserRepository
	bcryptCost int
	clock      ports.Clock
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, bcryptCost int, clock ports.Clock) *UserUseCase {
	return &UserUseCase{repo: repo, bcryptCost: bcryptCost, clock: clock}
}

func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	out := auth.ToUserResponse(u)
	return &out, nil
}

// Create crea un usuario con la password hasheada. Rol por defecto MANAGER.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := auth.NormalizeEmail(in.Email)
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := auth.HashPassword(in.Password, uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleManager
	}
	now := uc.clock.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	out := auth.ToUserResponse(u)
	return &out, nil
}

// Update modifica nombre, email, rol o password (re-hasheada).
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		email := auth.NormalizeEmail(*in.Email)
		if email != u.Email {
			other, err := uc.repo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			u.Email = email
		}
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := auth.HashPassword(*in.Password, uc.bcryptCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	out := auth.ToUserResponse(u)
	return &out, nil
}

// Delete elimina un usuario; nadie puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrCannotDeleteSelf
	}
	return notFound(uc.repo.Delete(ctx, id), domain.ErrUserNotFound)
}
