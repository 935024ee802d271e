// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/walletcore/billetera/internal/domain"
	"github.com/walletcore/billetera/pkg/errorspkg"
	"github.com/walletcore/billetera/pkg/passpkg"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo     Repo
	validate *validator.Validate
}

// New returns user service struct to manage user business logic.
func New(ur Repo) *Service {
	return &Service{
		repo:     ur,
		validate: validator.New(),
	}
}

// NewUserWithoutPassword returns user with removed sensitive data.
func NewUserWithoutPassword(u domain.User) domain.UserWithoutPassword {
	return domain.UserWithoutPassword{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt,
	}
}

// Create registers a new user with a hashed password and returns it.
func (s *Service) Create(ctx context.Context, fullName, email, password string, userType domain.UserType) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var result domain.UserWithoutPassword

	if userType == "" {
		userType = domain.UserTypeCustomer
	}

	passwordHash, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		UserType:     userType,
	}

	if err := s.validate.Struct(arg); err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	gotUser, err := s.repo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	result = NewUserWithoutPassword(gotUser)

	return result, nil
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.UserWithoutPassword, error) {
	gotUser, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.UserWithoutPassword{}, err
	}

	return NewUserWithoutPassword(gotUser), nil
}

// List returns all registered users.
func (s *Service) List(ctx context.Context) ([]domain.UserWithoutPassword, error) {
	gotUsers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.UserWithoutPassword, 0, len(gotUsers))
	for _, u := range gotUsers {
		users = append(users, NewUserWithoutPassword(u))
	}

	return users, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var response domain.UserWithoutPassword

	gotUser, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return response, err
	}

	err = passpkg.Check(password, gotUser.PasswordHash)
	if err != nil {
		l.Warn().Err(err).Send()
		return response, domain.ErrWrongPassword
	}

	response = NewUserWithoutPassword(gotUser)

	return response, nil
}
