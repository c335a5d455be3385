package service

import (
	"fmt"

	"storefront/internal/core/model"
	"storefront/internal/core/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(name, email, password string) (*model.User, error)
	Authenticate(email, password string) (*model.User, error)
	// GetProfile loads a user without the password hash.
	GetProfile(id string) (*model.User, error)
	// UpdateProfile replaces the non-empty fields; a non-empty password is
	// re-hashed before storing.
	UpdateProfile(id, name, email, password string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) Register(name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.NewUser(name, email, string(hash))
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrBadCredentials
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return user, nil
}

func (s *userService) GetProfile(id string) (*model.User, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	user, err := s.userRepo.FindByIDPublic(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(id, name, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
