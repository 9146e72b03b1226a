package user

import (
	"context"
	"errors"
	"strings"

	domain "lecturer-claims-service/internal/domain/user"

	"gorm.io/gorm"
)

// MaxHourlyRate bounds pay rates the same way user records are bounded at
// entry.
const MaxHourlyRate = 1000

var ErrInvalidInput = errors.New("invalid user input")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateUserInput) (*UserDTO, error) {
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.FullName) == "" ||
		!in.Role.Valid() || in.HourlyRate < 0 || in.HourlyRate > MaxHourlyRate {
		return nil, ErrInvalidInput
	}

	// email uniqueness is case-insensitive
	_, err := u.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	usr := &domain.User{
		Email:      strings.TrimSpace(in.Email),
		FullName:   strings.TrimSpace(in.FullName),
		Role:       in.Role,
		HourlyRate: in.HourlyRate,
		IsActive:   true,
	}
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return toDTO(usr), nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateUserInput) (*UserDTO, error) {
	if strings.TrimSpace(in.FullName) == "" || !in.Role.Valid() ||
		in.HourlyRate < 0 || in.HourlyRate > MaxHourlyRate {
		return nil, ErrInvalidInput
	}
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	usr.FullName = strings.TrimSpace(in.FullName)
	usr.Role = in.Role
	usr.HourlyRate = in.HourlyRate
	usr.IsActive = in.IsActive
	if err := u.repo.Save(ctx, usr); err != nil {
		return nil, err
	}
	return toDTO(usr), nil
}

// Deactivate replaces physical deletion: the record stays, historical claims
// keep resolving it, and the user can no longer act.
func (u *Usecase) Deactivate(ctx context.Context, id uint64) error {
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	usr.IsActive = false
	return u.repo.Save(ctx, usr)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*UserDTO, error) {
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(usr), nil
}

func (u *Usecase) GetByEmail(ctx context.Context, email string) (*UserDTO, error) {
	usr, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(usr), nil
}

func (u *Usecase) List(ctx context.Context) ([]UserDTO, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *toDTO(&users[i]))
	}
	return out, nil
}

func toDTO(usr *domain.User) *UserDTO {
	return &UserDTO{
		ID:         usr.ID,
		Email:      usr.Email,
		FullName:   usr.FullName,
		Role:       string(usr.Role),
		HourlyRate: usr.HourlyRate,
		IsActive:   usr.IsActive,
		CreatedAt:  usr.CreatedAt,
	}
}
