package events

// ThreadResync asks the owning screen to refetch a thread wholesale.
func ThreadResync(postID string) Event {
	return Event{
		Name: THREAD_RESYNC,
		Params: map[string]interface{}{
			"post_id": postID,
		},
	}
}

func VoteSettled(nodeID, userID string) Event {
	return Event{
		Name: VOTE_SETTLED,
		Sign: &UserSign{UserID: userID},
		Params: map[string]interface{}{
			"id": nodeID,
		},
	}
}

func VoteReverted(nodeID, userID string) Event {
	return Event{
		Name: VOTE_REVERTED,
		Sign: &UserSign{UserID: userID},
		Params: map[string]interface{}{
			"id": nodeID,
		},
	}
}

func ReplyConfirmed(postID, replyID string) Event {
	return Event{
		Name: REPLY_CONFIRMED,
		Params: map[string]interface{}{
			"post_id": postID,
			"id":      replyID,
		},
	}
}

func ReplyDropped(postID, tempID string) Event {
	return Event{
		Name: REPLY_DROPPED,
		Params: map[string]interface{}{
			"post_id": postID,
			"id":      tempID,
		},
	}
}

func AnswerSubmitted(questionID string, correct bool) Event {
	return Event{
		Name: ANSWER_SUBMITTED,
		Params: map[string]interface{}{
			"question_id": questionID,
			"correct":     correct,
		},
	}
}

func AuthVerified(userID string) Event {
	return Event{
		Name: AUTH_VERIFIED,
		Sign: &UserSign{UserID: userID, Reason: "otp"},
	}
}
