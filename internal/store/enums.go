package store

// Milestone types for referral rewards. A (referrer, referred, milestone_type)
// triple is unique in referral_rewards.
const (
	MilestoneSignup          = "signup"
	MilestoneFirstWithdrawal = "first_withdrawal"
	MilestoneWithdrawal50    = "withdrawal_50"
	MilestoneWithdrawal250   = "withdrawal_250"
	MilestoneWithdrawal500   = "withdrawal_500"
)

// Withdrawal request statuses
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// Notification types
const (
	NotificationTypeInfo    = "info"
	NotificationTypeSuccess = "success"
	NotificationTypeWarning = "warning"
)

// Transaction types
const (
	TransactionTypeFreeCredits    = "free_credits"
	TransactionTypeReferralReward = "referral_reward"
	TransactionTypeWithdrawal     = "withdrawal"
)
