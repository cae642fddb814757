package processor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var testTime = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

const (
	testDevice = "a1b2c3d4e5f6a7b8c9d0e1f2"
	testCode   = "K7Q2M9XA"
)

type fixture struct {
	store   *MockReferralStore
	pending *MockPendingReferrals
	events  *MockEventPublisher
	proc    ReferralProcessor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		store:   NewMockReferralStore(ctrl),
		pending: NewMockPendingReferrals(ctrl),
		events:  NewMockEventPublisher(ctrl),
	}
	f.proc = New(f.store, f.pending, f.events, "https://app.spritepay.example", "/signup", observability.NewLogger())
	f.proc.now = func() time.Time { return testTime }
	return f
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		want   string
	}{
		{"valid ref param", "https://app.spritepay.example/signup?ref=K7Q2M9XA", "K7Q2M9XA"},
		{"ref among other params", "https://app.spritepay.example/signup?utm_source=x&ref=AB12CD34", "AB12CD34"},
		{"missing ref", "https://app.spritepay.example/signup", ""},
		{"lowercase rejected", "https://app.spritepay.example/signup?ref=k7q2m9xa", ""},
		{"too short", "https://app.spritepay.example/signup?ref=ABC123", ""},
		{"too long", "https://app.spritepay.example/signup?ref=ABCD12345", ""},
		{"unparseable url", "://nope?ref=K7Q2M9XA", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCode(tt.rawURL); got != tt.want {
				t.Errorf("ExtractCode(%q) = %q, want %q", tt.rawURL, got, tt.want)
			}
		})
	}
}

func TestCaptureFromURL_StashesCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.pending.EXPECT().SetPendingReferral(gomock.Any(), testDevice, testCode).Return(nil)

	code, err := f.proc.CaptureFromURL(ctx, testDevice, "https://app.spritepay.example/signup?ref="+testCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != testCode {
		t.Errorf("code = %q, want %q", code, testCode)
	}
}

func TestCaptureFromURL_NoCodeIsNoOp(t *testing.T) {
	f := newFixture(t)

	code, err := f.proc.CaptureFromURL(context.Background(), testDevice, "https://app.spritepay.example/signup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "" {
		t.Errorf("code = %q, want empty", code)
	}
}

func TestProcessPending_CreatesRelationship(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	referrerID := uuid.New()
	ctx := context.Background()

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return(testCode, nil)
	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), userID).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().GetReferralCodeByCode(gomock.Any(), testCode).Return(store.ReferralCode{
		UserID:   referrerID,
		Code:     testCode,
		IsActive: true,
	}, nil)
	f.store.EXPECT().GetProfileByID(gomock.Any(), userID).Return(store.Profile{ID: userID, Name: "Ana"}, nil)
	f.store.EXPECT().CreateReferralReward(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params store.CreateReferralRewardParams) (store.ReferralReward, error) {
			if params.ReferrerUserID != referrerID || params.ReferredUserID != userID {
				t.Errorf("anchor row linked wrong users: %v -> %v", params.ReferrerUserID, params.ReferredUserID)
			}
			if params.MilestoneType != store.MilestoneSignup {
				t.Errorf("milestone = %s, want signup", params.MilestoneType)
			}
			if params.CreditsEarned != 0 {
				t.Errorf("signup anchor credits = %d, want 0", params.CreditsEarned)
			}
			if params.ReferredUserName == nil || *params.ReferredUserName != "Ana" {
				t.Errorf("referred user name not carried")
			}
			return store.ReferralReward{ID: uuid.New()}, nil
		})
	f.store.EXPECT().SetReferredByCode(gomock.Any(), userID, testCode).Return(nil)
	f.store.EXPECT().CreateNotification(gomock.Any(), referrerID, gomock.Any(), store.NotificationTypeInfo).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, message, _ string) (store.Notification, error) {
			if !strings.Contains(message, "Ana") {
				t.Errorf("notification does not name the referred user: %q", message)
			}
			return store.Notification{}, nil
		})
	f.events.EXPECT().ReferralCreated(gomock.Any(), referrerID, userID, testCode).Return(nil)
	f.pending.EXPECT().ClearPendingReferral(gomock.Any(), testDevice).Return(nil)

	result, err := f.proc.ProcessPending(ctx, userID, testDevice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Created {
		t.Fatal("expected relationship to be created")
	}
	if result.ReferrerUserID != referrerID {
		t.Errorf("referrer = %v, want %v", result.ReferrerUserID, referrerID)
	}
}

func TestProcessPending_NoPendingCode(t *testing.T) {
	f := newFixture(t)

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return("", nil)

	result, err := f.proc.ProcessPending(context.Background(), uuid.New(), testDevice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created {
		t.Fatal("expected no-op")
	}
}

func TestProcessPending_MalformedCodeAbandoned(t *testing.T) {
	f := newFixture(t)

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return("bad-code", nil)
	f.pending.EXPECT().ClearPendingReferral(gomock.Any(), testDevice).Return(nil)

	result, err := f.proc.ProcessPending(context.Background(), uuid.New(), testDevice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created {
		t.Fatal("expected no-op")
	}
	if result.Reason != "malformed referral code" {
		t.Errorf("reason = %q", result.Reason)
	}
}

func TestProcessPending_AlreadyReferredAbandoned(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return(testCode, nil)
	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), userID).Return(store.ReferralReward{ID: uuid.New()}, nil)
	f.pending.EXPECT().ClearPendingReferral(gomock.Any(), testDevice).Return(nil)

	result, err := f.proc.ProcessPending(context.Background(), userID, testDevice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created {
		t.Fatal("expected no-op")
	}
	if result.Reason != "user already referred" {
		t.Errorf("reason = %q", result.Reason)
	}
}

func TestProcessPending_UnknownCodeAbandoned(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return(testCode, nil)
	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), userID).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().GetReferralCodeByCode(gomock.Any(), testCode).Return(store.ReferralCode{}, store.ErrNotFound)
	f.pending.EXPECT().ClearPendingReferral(gomock.Any(), testDevice).Return(nil)

	result, err := f.proc.ProcessPending(context.Background(), userID, testDevice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reason != "referral code not found" {
		t.Errorf("reason = %q", result.Reason)
	}
}

func TestProcessPending_InactiveCodeAbandoned(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return(testCode, nil)
	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), userID).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().GetReferralCodeByCode(gomock.Any(), testCode).Return(store.ReferralCode{
		UserID:   uuid.New(),
		Code:     testCode,
		IsActive: false,
	}, nil)
	f.pending.EXPECT().ClearPendingReferral(gomock.Any(), testDevice).Return(nil)

	result, err := f.proc.ProcessPending(context.Background(), userID, testDevice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reason != "referral code inactive" {
		t.Errorf("reason = %q", result.Reason)
	}
}

func TestProcessPending_SelfReferralAbandoned(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return(testCode, nil)
	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), userID).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().GetReferralCodeByCode(gomock.Any(), testCode).Return(store.ReferralCode{
		UserID:   userID,
		Code:     testCode,
		IsActive: true,
	}, nil)
	f.pending.EXPECT().ClearPendingReferral(gomock.Any(), testDevice).Return(nil)

	result, err := f.proc.ProcessPending(context.Background(), userID, testDevice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reason != "self-referral" {
		t.Errorf("reason = %q", result.Reason)
	}
}

func TestProcessPending_StoreFailureKeepsSlot(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	boom := errors.New("connection reset")

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return(testCode, nil)
	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), userID).Return(store.ReferralReward{}, boom)

	_, err := f.proc.ProcessPending(context.Background(), userID, testDevice)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestProcessPending_LostInsertRaceAbandoned(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	referrerID := uuid.New()

	f.pending.EXPECT().PendingReferral(gomock.Any(), testDevice).Return(testCode, nil)
	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), userID).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().GetReferralCodeByCode(gomock.Any(), testCode).Return(store.ReferralCode{
		UserID:   referrerID,
		Code:     testCode,
		IsActive: true,
	}, nil)
	f.store.EXPECT().GetProfileByID(gomock.Any(), userID).Return(store.Profile{ID: userID, Name: "Ana"}, nil)
	f.store.EXPECT().CreateReferralReward(gomock.Any(), gomock.Any()).Return(store.ReferralReward{}, store.ErrAlreadyExists)
	f.pending.EXPECT().ClearPendingReferral(gomock.Any(), testDevice).Return(nil)

	result, err := f.proc.ProcessPending(context.Background(), userID, testDevice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created {
		t.Fatal("expected no-op after lost race")
	}
	if result.Reason != "user already referred" {
		t.Errorf("reason = %q", result.Reason)
	}
}

func TestGenerateCode_ReturnsExistingActiveCode(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	existing := store.ReferralCode{UserID: userID, Code: testCode, IsActive: true}

	f.store.EXPECT().GetActiveReferralCodeByUser(gomock.Any(), userID).Return(existing, nil)

	got, err := f.proc.GenerateCode(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Code != testCode {
		t.Errorf("code = %q, want %q", got.Code, testCode)
	}
}

func TestGenerateCode_MintsWellFormedCode(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.store.EXPECT().GetActiveReferralCodeByUser(gomock.Any(), userID).Return(store.ReferralCode{}, store.ErrNotFound)
	f.store.EXPECT().CreateReferralCode(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, userID uuid.UUID, code string) (store.ReferralCode, error) {
			if !IsValidCode(code) {
				t.Errorf("minted code %q is not well formed", code)
			}
			return store.ReferralCode{UserID: userID, Code: code, IsActive: true}, nil
		})

	got, err := f.proc.GenerateCode(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsValidCode(got.Code) {
		t.Errorf("returned code %q is not well formed", got.Code)
	}
}

func TestGenerateCode_RetriesOnCollision(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.store.EXPECT().GetActiveReferralCodeByUser(gomock.Any(), userID).Return(store.ReferralCode{}, store.ErrNotFound)
	first := f.store.EXPECT().CreateReferralCode(gomock.Any(), userID, gomock.Any()).Return(store.ReferralCode{}, store.ErrAlreadyExists)
	f.store.EXPECT().CreateReferralCode(gomock.Any(), userID, gomock.Any()).After(first).DoAndReturn(
		func(_ context.Context, userID uuid.UUID, code string) (store.ReferralCode, error) {
			return store.ReferralCode{UserID: userID, Code: code, IsActive: true}, nil
		})

	if _, err := f.proc.GenerateCode(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateCode_ExhaustsRetries(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.store.EXPECT().GetActiveReferralCodeByUser(gomock.Any(), userID).Return(store.ReferralCode{}, store.ErrNotFound)
	f.store.EXPECT().CreateReferralCode(gomock.Any(), userID, gomock.Any()).Return(store.ReferralCode{}, store.ErrAlreadyExists).Times(maxCodeAttempts)

	_, err := f.proc.GenerateCode(context.Background(), userID)
	if !errors.Is(err, ErrCodeGeneration) {
		t.Fatalf("err = %v, want ErrCodeGeneration", err)
	}
}

func TestLink(t *testing.T) {
	f := newFixture(t)

	got := f.proc.Link(testCode)
	want := "https://app.spritepay.example/signup?ref=" + testCode
	if got != want {
		t.Errorf("Link = %q, want %q", got, want)
	}
}

func TestGetStats(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	rewards := []store.ReferralReward{
		{MilestoneType: store.MilestoneSignup, CreditsEarned: 0},
		{MilestoneType: store.MilestoneFirstWithdrawal, CreditsEarned: 2},
	}

	f.store.EXPECT().GetReferralStatsByReferrer(gomock.Any(), userID).Return(store.ReferralStats{
		TotalCreditsEarned:  2,
		TotalReferredUsers:  1,
		CompletedMilestones: 2,
	}, nil)
	f.store.EXPECT().GetRewardsByReferrer(gomock.Any(), userID).Return(rewards, nil)

	stats, err := f.proc.GetStats(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCreditsEarned != 2 || stats.TotalReferredUsers != 1 {
		t.Errorf("unexpected aggregates: %+v", stats)
	}
	if len(stats.Rewards) != 2 {
		t.Errorf("rewards len = %d, want 2", len(stats.Rewards))
	}
}

func TestGetNotifications(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	rows := []store.Notification{
		{UserID: userID, Message: "Ana created an account using your invite link!", Type: store.NotificationTypeInfo},
	}

	f.store.EXPECT().GetNotificationsByUser(gomock.Any(), userID, notificationsLimit).Return(rows, nil)

	notifications, err := f.proc.GetNotifications(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Message != rows[0].Message {
		t.Errorf("notifications = %+v", notifications)
	}
}
