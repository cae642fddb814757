package processor

import (
	"context"
	"errors"
	"testing"

	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	mockReferrals := NewMockReferralCapture(ctrl)
	logger := observability.NewLogger()

	processor := New(mockStore, mockReferrals, "secret", logger)

	ctx := context.Background()
	userID := uuid.New()

	mockStore.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
		Return(store.Profile{ID: userID, Name: "Ana", Email: "ana@example.com"}, nil)

	result, err := processor.Signup(ctx, "Ana", "ana@example.com", "password123", "", "")

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result.Email != "ana@example.com" {
		t.Errorf("expected email ana@example.com, got %s", result.Email)
	}
	if result.ID != userID {
		t.Errorf("expected id %s, got %s", userID, result.ID)
	}
}

func TestSignup_StashesReferralCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	mockReferrals := NewMockReferralCapture(ctrl)
	logger := observability.NewLogger()

	processor := New(mockStore, mockReferrals, "secret", logger)

	mockStore.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
		Return(store.Profile{ID: uuid.New()}, nil)
	mockReferrals.EXPECT().SetPendingReferral(gomock.Any(), "device-1", "ABCD1234").Return(nil)

	_, err := processor.Signup(context.Background(), "Ana", "ana@example.com", "password123", "ABCD1234", "device-1")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestSignup_StashFailureDoesNotFailSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	mockReferrals := NewMockReferralCapture(ctrl)
	logger := observability.NewLogger()

	processor := New(mockStore, mockReferrals, "secret", logger)

	mockStore.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
		Return(store.Profile{ID: uuid.New()}, nil)
	mockReferrals.EXPECT().SetPendingReferral(gomock.Any(), "device-1", "ABCD1234").
		Return(errors.New("kv down"))

	_, err := processor.Signup(context.Background(), "Ana", "ana@example.com", "password123", "ABCD1234", "device-1")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestSignup_EmailAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	mockReferrals := NewMockReferralCapture(ctrl)
	logger := observability.NewLogger()

	processor := New(mockStore, mockReferrals, "secret", logger)

	mockStore.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
		Return(store.Profile{}, store.ErrAlreadyExists)

	_, err := processor.Signup(context.Background(), "Ana", "taken@example.com", "password123", "", "")

	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	mockReferrals := NewMockReferralCapture(ctrl)
	logger := observability.NewLogger()

	processor := New(mockStore, mockReferrals, "secret", logger)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	userID := uuid.New()

	mockStore.EXPECT().GetProfileByEmail(gomock.Any(), "ana@example.com").
		Return(store.Profile{ID: userID, Email: "ana@example.com", HashedPassword: string(hashed)}, nil)

	token, err := processor.Login(context.Background(), "ana@example.com", "password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}

	claims, err := processor.ValidateJWTToken(context.Background(), token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	sub, _ := claims.GetSubject()
	if sub != userID.String() {
		t.Errorf("subject = %s, want %s", sub, userID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	mockReferrals := NewMockReferralCapture(ctrl)
	logger := observability.NewLogger()

	processor := New(mockStore, mockReferrals, "secret", logger)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockStore.EXPECT().GetProfileByEmail(gomock.Any(), "ana@example.com").
		Return(store.Profile{ID: uuid.New(), HashedPassword: string(hashed)}, nil)

	_, err := processor.Login(context.Background(), "ana@example.com", "wrongpass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	mockReferrals := NewMockReferralCapture(ctrl)
	logger := observability.NewLogger()

	processor := New(mockStore, mockReferrals, "secret", logger)

	mockStore.EXPECT().GetProfileByEmail(gomock.Any(), "ghost@example.com").
		Return(store.Profile{}, store.ErrNotFound)

	_, err := processor.Login(context.Background(), "ghost@example.com", "password123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateJWTToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := New(NewMockAuthStore(ctrl), NewMockReferralCapture(ctrl), "secret", observability.NewLogger())

	_, err := processor.ValidateJWTToken(context.Background(), "not.a.token")
	if !errors.Is(err, ErrParseJWTToken) {
		t.Errorf("expected ErrParseJWTToken, got %v", err)
	}
}

func TestIsAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockAuthStore(ctrl)
	processor := New(mockStore, NewMockReferralCapture(ctrl), "secret", observability.NewLogger())

	userID := uuid.New()
	mockStore.EXPECT().GetProfileByID(gomock.Any(), userID).
		Return(store.Profile{ID: userID, Email: "admin@imperium.com"}, nil).Times(2)

	ok, err := processor.IsAdmin(context.Background(), userID, "admin@imperium.com")
	if err != nil || !ok {
		t.Errorf("IsAdmin = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = processor.IsAdmin(context.Background(), userID, "other@imperium.com")
	if err != nil || ok {
		t.Errorf("IsAdmin = (%v, %v), want (false, nil)", ok, err)
	}
}
