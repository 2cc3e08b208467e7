package models

// Channel and article status fields are small integer bitmasks. Public/Private
// describe how content was created, Disabled marks content removed from
// visibility, Requested marks an article waiting for editorial review.
const (
	StatusPublic    = 1
	StatusPrivate   = 2
	StatusDisabled  = 4
	StatusRequested = 8
)

// Default status values assigned on creation.
const (
	ChannelDefaultStatus = StatusPublic
	ArticleAdminStatus   = StatusPublic
	ArticlePendingStatus = StatusRequested | StatusPublic
)

func HasFlag(status, flag int) bool {
	return status&flag != 0
}

// SetFlag is one-directional: nothing in the system clears a flag set through
// it. It is only used for Disabled.
func SetFlag(status, flag int) int {
	return status | flag
}

func ToggleFlag(status, flag int) int {
	return status ^ flag
}

// ArticleState is the moderation stage derived from the status bitmask.
// Workflow code only looks at the state and the transition functions below,
// never at raw bits.
type ArticleState int

const (
	StatePublished ArticleState = iota
	StatePendingReview
	StateRejected
	StateRemoved
)

func (s ArticleState) String() string {
	switch s {
	case StatePublished:
		return "published"
	case StatePendingReview:
		return "pending_review"
	case StateRejected:
		return "rejected"
	default:
		return "removed"
	}
}

// DeriveState maps a status bitmask onto the moderation stage.
func DeriveState(status int) ArticleState {
	disabled := HasFlag(status, StatusDisabled)
	requested := HasFlag(status, StatusRequested)

	switch {
	case requested && disabled:
		return StateRejected
	case requested:
		return StatePendingReview
	case disabled:
		return StateRemoved
	default:
		return StatePublished
	}
}

// AcceptArticleStatus clears exactly the Requested bit of a pending article.
// ok is false when the article is not pending review, in which case status is
// returned unchanged.
func AcceptArticleStatus(status int) (int, bool) {
	if DeriveState(status) != StatePendingReview {
		return status, false
	}
	return ToggleFlag(status, StatusRequested), true
}

// RejectArticleStatus disables a pending article while keeping the Requested
// bit, so a rejected article stays distinguishable from a removed one.
func RejectArticleStatus(status int) (int, bool) {
	if DeriveState(status) != StatePendingReview {
		return status, false
	}
	return ToggleFlag(status, StatusDisabled), true
}

// DisableStatus marks an article or channel removed. Disabling is terminal;
// there is no transition that clears the Disabled bit.
func DisableStatus(status int) (int, bool) {
	if HasFlag(status, StatusDisabled) {
		return status, false
	}
	return SetFlag(status, StatusDisabled), true
}
