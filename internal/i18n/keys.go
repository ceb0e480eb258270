// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyWelcome       = "common.welcome"
	KeyInternalError = "common.internal_error"
	KeyRateLimited   = "common.rate_limited"
	KeyStoreDown     = "common.store_unavailable"
	KeyHealthy       = "common.healthy"

	// Products
	KeyProductCreated   = "product.created"
	KeyProductDeleted   = "product.deleted"
	KeyProductNotFound  = "product.not_found"
	KeyProductInvalidID = "product.invalid_id"
	KeyProductDecided   = "product.decided"
	KeyProductFeatured  = "product.featured"

	// Moderation
	KeyModerationInvalidAction = "moderation.invalid_action"

	// Engagement
	KeyUpvoteRecorded  = "engagement.upvote_recorded"
	KeyReportRecorded  = "engagement.report_recorded"
	KeyAlreadyVoted    = "engagement.already_voted"
	KeyAlreadyReported = "engagement.already_reported"

	// Users
	KeyUserCreated     = "user.created"
	KeyUserNotFound    = "user.not_found"
	KeyUserRoleUpdated = "user.role_updated"
	KeyUserNotModified = "user.not_modified"
	KeySubscriptionSet = "user.subscription_updated"

	// Reviews and coupons
	KeyReviewCreated  = "review.created"
	KeyCouponCreated  = "coupon.created"
	KeyCouponUpdated  = "coupon.updated"
	KeyCouponDeleted  = "coupon.deleted"
	KeyCouponNotFound = "coupon.not_found"

	// Audit
	KeyAuditDisabled = "audit.disabled"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
