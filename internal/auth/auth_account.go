package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "go-hrms/internal/auth/errors"
	employeeerrors "go-hrms/internal/employee/errors"

	"go.uber.org/zap"
)

// RegisterMessage is returned for every accepted sign-up. Accounts are
// created by an admin or a CSV import, never by registration.
const RegisterMessage = "Registration functionality would be implemented in a real app. Please use the login page with demo credentials."

func (s *service) Register(_ context.Context, req RegisterRequest) (RegisterResponse, error) {
	switch {
	case strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "":
		return RegisterResponse{}, autherrors.ErrNameRequired
	case strings.TrimSpace(req.Email) == "":
		return RegisterResponse{}, autherrors.ErrEmailRequired
	case req.Password == "":
		return RegisterResponse{}, autherrors.ErrPasswordRequired
	case req.Password != req.ConfirmPassword:
		return RegisterResponse{}, autherrors.ErrPasswordMismatch
	case !req.AgreeToTerms:
		return RegisterResponse{}, autherrors.ErrTermsNotAccepted
	}

	s.logger.Info("registration accepted without creating an account")
	return RegisterResponse{Message: RegisterMessage}, nil
}

func isDemoAccount(email string) bool {
	_, ok := DemoAccounts[strings.ToLower(email)]
	return ok
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return ProfileResponse{}, autherrors.ErrProfileNameRequired
	}
	if email == "" {
		return ProfileResponse{}, autherrors.ErrEmailRequired
	}

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return ProfileResponse{}, err
	}

	if !strings.EqualFold(email, user.Email) {
		if isDemoAccount(user.Email) {
			return ProfileResponse{}, autherrors.ErrDemoAccountCredentials
		}
		other, err := s.users.FindByEmail(ctx, email)
		switch {
		case err == nil && other.ID != user.ID:
			return ProfileResponse{}, autherrors.ErrEmailTaken
		case err != nil && !errors.Is(err, employeeerrors.ErrEmployeeNotFound):
			return ProfileResponse{}, err
		}
	}

	user.Name = name
	user.Email = email
	user.Phone = strings.TrimSpace(req.Phone)
	user.Address = strings.TrimSpace(req.Address)
	if err := s.users.Update(ctx, user); err != nil {
		return ProfileResponse{}, err
	}

	s.logger.Info("profile updated", zap.String("user_id", user.ID))
	return ProfileResponse{
		AuthResponse: toAuthResponse(newSessionUser(*user)),
		Phone:        user.Phone,
		Address:      user.Address,
	}, nil
}

// ChangePassword applies the login rule to the current password: a user
// without a stored password may set one with any current value.
func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	if req.NewPassword == "" {
		return autherrors.ErrPasswordRequired
	}
	if req.NewPassword != req.ConfirmPassword {
		return autherrors.ErrPasswordMismatch
	}

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return err
	}
	if isDemoAccount(user.Email) {
		return autherrors.ErrDemoAccountCredentials
	}
	if user.Password != "" && user.Password != req.CurrentPassword {
		return autherrors.ErrCurrentPasswordInvalid
	}

	user.Password = req.NewPassword
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("password changed", zap.String("user_id", user.ID))
	return nil
}
