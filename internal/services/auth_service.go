package services

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
	"github.com/justsurfingit/Campus-Job-Board/internal/auth"
	"github.com/justsurfingit/Campus-Job-Board/internal/dtos"
	"github.com/justsurfingit/Campus-Job-Board/internal/models"
	"github.com/justsurfingit/Campus-Job-Board/internal/store"
	"github.com/justsurfingit/Campus-Job-Board/internal/validation"
)

type AuthService struct {
	Users  store.UserStore
	Tokens *auth.TokenProvider
}

func NewAuthService(users store.UserStore, tokens *auth.TokenProvider) *AuthService {
	return &AuthService{Users: users, Tokens: tokens}
}

func (s *AuthService) Register(req *dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	rules := []validation.Rule{
		{Field: "email", Message: "Please include a valid email", Valid: validation.IsEmail(req.Email)},
		{Field: "password", Message: "Please enter a password with 6 or more characters", Valid: validation.MinLen(req.Password, 6)},
		{Field: "firstName", Message: "First name is required", Valid: validation.NotEmpty(req.FirstName)},
		{Field: "lastName", Message: "Last name is required", Valid: validation.NotEmpty(req.LastName)},
		{Field: "userType", Message: "User type is required", Valid: validation.OneOf(req.UserType, models.UserStudent, models.UserCompany, models.UserAdmin)},
	}
	if err := validation.Apply(rules); err != nil {
		return nil, err
	}

	if _, err := s.Users.FindByEmail(req.Email); err == nil {
		return nil, apperr.New(apperr.CodeConflict, "User already exists", nil)
	} else if !apperr.Is(err, apperr.CodeNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.New(apperr.CodeInternal, "failed to hash password", err)
	}

	user, err := s.Users.Create(models.User{
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserType:  req.UserType,
	})
	if err != nil {
		return nil, err
	}
	return s.respondWithToken(user)
}

// Login verifies the password against the stored bcrypt hash. The seeded
// demo accounts carry the placeholder hash, only for those is the mock
// length check accepted in place of a real digest.
func (s *AuthService) Login(req *dtos.LoginRequest) (*dtos.AuthResponse, error) {
	rules := []validation.Rule{
		{Field: "email", Message: "Please include a valid email", Valid: validation.IsEmail(req.Email)},
		{Field: "password", Message: "Password is required", Valid: validation.NotEmpty(req.Password)},
	}
	if err := validation.Apply(rules); err != nil {
		return nil, err
	}

	user, err := s.Users.FindByEmail(req.Email)
	if err != nil {
		if apperr.Is(err, apperr.CodeNotFound) {
			return nil, apperr.New(apperr.CodeConflict, "Invalid credentials", nil)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		if user.Password != store.SeedPasswordHash || len(req.Password) < 6 {
			return nil, apperr.New(apperr.CodeConflict, "Invalid credentials", nil)
		}
	}
	return s.respondWithToken(user)
}

func (s *AuthService) Profile(userID int64) (*dtos.UserInfo, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	info := userInfo(user)
	return &info, nil
}

func (s *AuthService) respondWithToken(user *models.User) (*dtos.AuthResponse, error) {
	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResponse{Token: token, User: userInfo(user)}, nil
}

func userInfo(user *models.User) dtos.UserInfo {
	return dtos.UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserType:  user.UserType,
	}
}
