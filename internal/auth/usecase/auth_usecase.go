package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	authdomain "notevault-backend/internal/auth/domain"
	authdto "notevault-backend/internal/auth/dto"
	"notevault-backend/internal/auth/repository"
	"notevault-backend/pkg/mailer"
	"notevault-backend/pkg/password"
	"notevault-backend/pkg/response"
	"notevault-backend/pkg/token"

	"github.com/google/uuid"
)

// resetTokenExpiry bounds how long an emailed reset link stays usable.
const resetTokenExpiry = 15 * time.Minute

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	mailer   mailer.Mailer
	origin   string
}

// NewAuthUsecase creates a new instance of authUsecase. origin is the base
// URL embedded in password-reset links.
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service, m mailer.Mailer, origin string) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   m,
		origin:   origin,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)

	if fullName == "" || email == "" || username == "" || req.Password == "" {
		return nil, response.NewBadRequest("All fields are required.")
	}

	if !emailRegex.MatchString(email) {
		return nil, response.NewBadRequest("Expected valid email address.")
	}

	if err := password.Validate(req.Password); err != nil {
		return nil, response.NewBadRequest(err.Error())
	}

	// Check both identifiers in one query.
	existing, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewConflict("User with given details is already exist.")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		FullName: fullName,
		Email:    email,
		Username: username,
		Password: hashed,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if (username == "" && email == "") || req.Password == "" {
		return nil, response.NewBadRequest("Please provide username or email along with password.")
	}

	user, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("User not found!")
	}

	if !password.Verify(req.Password, user.Password) {
		return nil, response.NewUnauthorized("Invalid user credentials.")
	}

	accessToken, err := u.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := u.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	// Overwriting the stored token invalidates any other outstanding
	// session: one live refresh token per user, last write wins.
	user.RefreshToken = refreshToken
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (u *authUsecase) Logout(userID string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return response.NewNotFound("User not found!")
	}

	// Already-empty token makes this a no-op, so logout is idempotent.
	user.RefreshToken = ""
	return u.userRepo.Update(user)
}

func (u *authUsecase) GetUser(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("User not found!")
	}
	return user, nil
}

func (u *authUsecase) UpdateFullName(userID, fullName string) (*authdomain.User, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, response.NewBadRequest("Full name is required.")
	}

	user, err := u.GetUser(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(fullName)
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) UpdatePassword(userID, oldPassword, newPassword string) error {
	if err := password.Validate(newPassword); err != nil {
		return response.NewBadRequest(err.Error())
	}

	user, err := u.GetUser(userID)
	if err != nil {
		return err
	}

	if !password.Verify(oldPassword, user.Password) {
		return response.NewUnauthorized("Old password is incorrect.")
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	// The stored refresh token is intentionally left in place, so existing
	// sessions survive a password change.
	user.Password = hashed
	return u.userRepo.Update(user)
}

func (u *authUsecase) DeleteAccount(userID, confirmPassword string) error {
	if confirmPassword == "" {
		return response.NewBadRequest("Password is required to delete account.")
	}

	user, err := u.GetUser(userID)
	if err != nil {
		return err
	}

	if !password.Verify(confirmPassword, user.Password) {
		return response.NewUnauthorized("Password is incorrect.")
	}

	// TODO: also delete the notes owned by this user.
	rows, err := u.userRepo.Delete(user.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return response.NewNotFound("User not found, it might be already deleted.")
	}
	return nil
}

func (u *authUsecase) RefreshAccessToken(refreshToken string) (string, error) {
	userID, err := u.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", response.NewUnauthorized("Invalid or expired refresh token.")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}

	// A valid signature is not enough: the token must also be the one
	// currently stored on the record, otherwise logout or a newer login has
	// revoked it.
	if user == nil || user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return "", response.NewUnauthorized("Refresh token is no longer valid.")
	}

	return u.tokens.IssueAccessToken(user.ID)
}

func (u *authUsecase) ForgotPassword(email string) error {
	user, err := u.userRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if user == nil {
		return response.NewNotFound("User with given email not found!")
	}

	user.ResetPasswordToken = uuid.New().String()
	user.ResetPasswordTokenExpiry = time.Now().Add(resetTokenExpiry).UnixMilli()
	if err := u.userRepo.Update(user); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/resetPassword/%s", u.origin, user.ResetPasswordToken)
	body := fmt.Sprintf("Click the link below to reset your password. The link is valid for 15 minutes.\n\n%s", resetLink)

	// The token is already persisted at this point; a failed send leaves it
	// live until it expires.
	if err := u.mailer.Send(user.Email, "Reset your password", body); err != nil {
		return response.NewEmailDelivery("Failed to send reset password email.")
	}
	return nil
}

func (u *authUsecase) ResetPassword(resetToken, newPassword string) error {
	if err := password.Validate(newPassword); err != nil {
		return response.NewBadRequest(err.Error())
	}

	user, err := u.userRepo.FindByResetToken(resetToken, time.Now().UnixMilli())
	if err != nil {
		return err
	}
	if user == nil {
		return response.NewBadRequest("Reset password token is invalid or expired.")
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	// Clearing the token makes it single-use; no counter needed.
	user.Password = hashed
	user.ResetPasswordToken = ""
	user.ResetPasswordTokenExpiry = 0
	return u.userRepo.Update(user)
}
