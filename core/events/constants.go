package events

const (
	THREAD_RESYNC   = "thread:resync"
	VOTE_SETTLED    = "vote:settled"
	VOTE_REVERTED   = "vote:reverted"
	REPLY_CONFIRMED = "reply:confirmed"
	REPLY_DROPPED   = "reply:dropped"

	ANSWER_SUBMITTED = "answer:submitted"
	AUTH_VERIFIED    = "auth:verified"
)
