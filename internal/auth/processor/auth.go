package processor

import (
	"context"
	"errors"
	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthProcessor struct {
	store     AuthStore
	referrals ReferralCapture
	jwtSecret string
	logger    *observability.Logger
}

func New(store AuthStore, referrals ReferralCapture, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		referrals: referrals,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type SignedUpUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type User struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Credits int       `json:"credits"`
}

// Signup creates an account. A referral code arriving with the signup is
// stashed against the device for later processing; stash failures do not fail
// the signup.
func (p *AuthProcessor) Signup(
	ctx context.Context, name, email, password, referralCode, deviceKey string) (SignedUpUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return SignedUpUser{}, err
	}

	profile, err := p.store.CreateProfile(ctx, store.CreateProfileParams{
		Email:          email,
		Name:           name,
		HashedPassword: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return SignedUpUser{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to create profile", err)
		return SignedUpUser{}, err
	}

	if referralCode != "" && deviceKey != "" {
		if err := p.referrals.SetPendingReferral(ctx, deviceKey, referralCode); err != nil {
			p.logger.Warn(ctx, "failed to stash referral code", err)
		}
	}

	return SignedUpUser{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
	}, nil
}

// Login verifies credentials and returns a signed session token
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	profile, err := p.store.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get profile by email", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := p.generateJWTToken(ctx, profile.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// GetUser retrieves a user's profile by ID
func (p *AuthProcessor) GetUser(ctx context.Context, userID uuid.UUID) (User, error) {
	profile, err := p.store.GetProfileByID(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to get profile", err)
		return User{}, err
	}
	return User{
		ID:      profile.ID,
		Name:    profile.Name,
		Email:   profile.Email,
		Credits: profile.Credits,
	}, nil
}

// IsAdmin reports whether the user's email is on the operator allow-list
func (p *AuthProcessor) IsAdmin(ctx context.Context, userID uuid.UUID, adminEmail string) (bool, error) {
	profile, err := p.store.GetProfileByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return profile.Email == adminEmail, nil
}
