package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var processedAt = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store  *MockRewardsStore
	events *MockEventPublisher
	engine RewardEngine
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		store:  NewMockRewardsStore(ctrl),
		events: NewMockEventPublisher(ctrl),
	}
	f.engine = New(f.store, f.events, Config{MilestoneCredits: 2}, observability.NewLogger())
	return f
}

func anchorFor(referrerID, referredID uuid.UUID) store.ReferralReward {
	name := "Ana"
	return store.ReferralReward{
		ID:               uuid.New(),
		ReferrerUserID:   referrerID,
		ReferredUserID:   referredID,
		ReferralCode:     "K7Q2M9XA",
		MilestoneType:    store.MilestoneSignup,
		ReferredUserName: &name,
	}
}

// expectIssue wires the happy-path calls for one milestone being issued
func (f *fixture) expectIssue(referrerID, referredID uuid.UUID, milestoneType string) {
	f.store.EXPECT().GetRewardByMilestone(gomock.Any(), referrerID, referredID, milestoneType).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().CreateReferralReward(gomock.Any(), gomock.Any()).Return(store.ReferralReward{ID: uuid.New()}, nil)
	f.store.EXPECT().IncrementCredits(gomock.Any(), referrerID, 2).Return(store.Profile{}, nil)
	f.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(store.Transaction{}, nil)
	f.store.EXPECT().CreateNotification(gomock.Any(), referrerID, gomock.Any(), store.NotificationTypeSuccess).Return(store.Notification{}, nil)
	f.events.EXPECT().RewardIssued(gomock.Any(), referrerID, referredID, milestoneType, 2).Return(nil)
}

func TestOnWithdrawalApproved_NoAnchorIsNoOp(t *testing.T) {
	f := newFixture(t)
	referredID := uuid.New()

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(store.ReferralReward{}, store.ErrNotFound)

	result, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 100, processedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issued) != 0 {
		t.Errorf("issued = %v, want none", result.Issued)
	}
}

func TestOnWithdrawalApproved_FirstWithdrawalMilestone(t *testing.T) {
	f := newFixture(t)
	referrerID := uuid.New()
	referredID := uuid.New()

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(anchorFor(referrerID, referredID), nil)
	f.store.EXPECT().CountApprovedWithdrawalsBefore(gomock.Any(), referredID, processedAt).Return(0, nil)
	f.expectIssue(referrerID, referredID, store.MilestoneFirstWithdrawal)

	result, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 10, processedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issued) != 1 || result.Issued[0] != store.MilestoneFirstWithdrawal {
		t.Errorf("issued = %v, want [first_withdrawal]", result.Issued)
	}
	if result.CreditsAwarded != 2 {
		t.Errorf("credits = %d, want 2", result.CreditsAwarded)
	}
}

func TestOnWithdrawalApproved_LargeWithdrawalCompletesSeveralMilestones(t *testing.T) {
	f := newFixture(t)
	referrerID := uuid.New()
	referredID := uuid.New()

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(anchorFor(referrerID, referredID), nil)
	f.store.EXPECT().CountApprovedWithdrawalsBefore(gomock.Any(), referredID, processedAt).Return(0, nil)
	f.expectIssue(referrerID, referredID, store.MilestoneFirstWithdrawal)
	f.expectIssue(referrerID, referredID, store.MilestoneWithdrawal50)
	f.expectIssue(referrerID, referredID, store.MilestoneWithdrawal250)
	f.expectIssue(referrerID, referredID, store.MilestoneWithdrawal500)

	result, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 500, processedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issued) != 4 {
		t.Errorf("issued = %v, want 4 milestones", result.Issued)
	}
	if result.CreditsAwarded != 8 {
		t.Errorf("credits = %d, want 8", result.CreditsAwarded)
	}
}

func TestOnWithdrawalApproved_LaterWithdrawalSkipsFirstMilestone(t *testing.T) {
	f := newFixture(t)
	referrerID := uuid.New()
	referredID := uuid.New()

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(anchorFor(referrerID, referredID), nil)
	f.store.EXPECT().CountApprovedWithdrawalsBefore(gomock.Any(), referredID, processedAt).Return(2, nil)
	f.expectIssue(referrerID, referredID, store.MilestoneWithdrawal50)

	result, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 60, processedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issued) != 1 || result.Issued[0] != store.MilestoneWithdrawal50 {
		t.Errorf("issued = %v, want [withdrawal_50]", result.Issued)
	}
}

func TestOnWithdrawalApproved_AlreadyRewardedMilestoneSkipped(t *testing.T) {
	f := newFixture(t)
	referrerID := uuid.New()
	referredID := uuid.New()

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(anchorFor(referrerID, referredID), nil)
	f.store.EXPECT().CountApprovedWithdrawalsBefore(gomock.Any(), referredID, processedAt).Return(1, nil)
	f.store.EXPECT().GetRewardByMilestone(gomock.Any(), referrerID, referredID, store.MilestoneWithdrawal50).Return(store.ReferralReward{ID: uuid.New()}, nil)

	result, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 75, processedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issued) != 0 {
		t.Errorf("issued = %v, want none", result.Issued)
	}
	if result.CreditsAwarded != 0 {
		t.Errorf("credits = %d, want 0", result.CreditsAwarded)
	}
}

func TestOnWithdrawalApproved_LostInsertRaceIsNoOp(t *testing.T) {
	f := newFixture(t)
	referrerID := uuid.New()
	referredID := uuid.New()

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(anchorFor(referrerID, referredID), nil)
	f.store.EXPECT().CountApprovedWithdrawalsBefore(gomock.Any(), referredID, processedAt).Return(1, nil)
	f.store.EXPECT().GetRewardByMilestone(gomock.Any(), referrerID, referredID, store.MilestoneWithdrawal50).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().CreateReferralReward(gomock.Any(), gomock.Any()).Return(store.ReferralReward{}, store.ErrAlreadyExists)

	result, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 75, processedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issued) != 0 {
		t.Errorf("issued = %v, want none", result.Issued)
	}
}

func TestOnWithdrawalApproved_RewardRowCarriesAnchorMetadata(t *testing.T) {
	f := newFixture(t)
	referrerID := uuid.New()
	referredID := uuid.New()
	anchor := anchorFor(referrerID, referredID)

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(anchor, nil)
	f.store.EXPECT().CountApprovedWithdrawalsBefore(gomock.Any(), referredID, processedAt).Return(1, nil)
	f.store.EXPECT().GetRewardByMilestone(gomock.Any(), referrerID, referredID, store.MilestoneWithdrawal50).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().CreateReferralReward(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params store.CreateReferralRewardParams) (store.ReferralReward, error) {
			if params.ReferralCode != anchor.ReferralCode {
				t.Errorf("referral code = %q, want %q", params.ReferralCode, anchor.ReferralCode)
			}
			if params.CreditsEarned != 2 {
				t.Errorf("credits = %d, want 2", params.CreditsEarned)
			}
			if params.ReferredUserName == nil || *params.ReferredUserName != "Ana" {
				t.Error("referred user name not carried from anchor")
			}
			if !params.MilestoneCompletedAt.Equal(processedAt) {
				t.Errorf("completed at = %v, want %v", params.MilestoneCompletedAt, processedAt)
			}
			return store.ReferralReward{ID: uuid.New()}, nil
		})
	f.store.EXPECT().IncrementCredits(gomock.Any(), referrerID, 2).Return(store.Profile{}, nil)
	f.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(store.Transaction{}, nil)
	f.store.EXPECT().CreateNotification(gomock.Any(), referrerID, gomock.Any(), store.NotificationTypeSuccess).Return(store.Notification{}, nil)
	f.events.EXPECT().RewardIssued(gomock.Any(), referrerID, referredID, store.MilestoneWithdrawal50, 2).Return(nil)

	if _, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 75, processedAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOnWithdrawalApproved_StoreFailureIsIndeterminate(t *testing.T) {
	f := newFixture(t)
	referredID := uuid.New()
	boom := errors.New("connection reset")

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(store.ReferralReward{}, boom)

	if _, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 100, processedAt); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestOnWithdrawalApproved_CreditFailureStopsProcessing(t *testing.T) {
	f := newFixture(t)
	referrerID := uuid.New()
	referredID := uuid.New()
	boom := errors.New("connection reset")

	f.store.EXPECT().GetSignupRewardByReferredUser(gomock.Any(), referredID).Return(anchorFor(referrerID, referredID), nil)
	f.store.EXPECT().CountApprovedWithdrawalsBefore(gomock.Any(), referredID, processedAt).Return(1, nil)
	f.store.EXPECT().GetRewardByMilestone(gomock.Any(), referrerID, referredID, store.MilestoneWithdrawal50).Return(store.ReferralReward{}, store.ErrNotFound)
	f.store.EXPECT().CreateReferralReward(gomock.Any(), gomock.Any()).Return(store.ReferralReward{ID: uuid.New()}, nil)
	f.store.EXPECT().IncrementCredits(gomock.Any(), referrerID, 2).Return(store.Profile{}, boom)

	if _, err := f.engine.OnWithdrawalApproved(context.Background(), referredID, 75, processedAt); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}
