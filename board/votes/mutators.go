package votes

// Apply computes the next like/dislike sets for a toggle of the given
// kind. Toggling an existing vote removes it; casting a new vote removes
// the user from the opposite set, so a user id lives in at most one of
// the two sets at any time. Inputs are copied, never aliased.
func Apply(kind VoteType, userID string, likes, dislikes []string) (nextLikes, nextDislikes []string) {
	switch kind {
	case Down:
		if contains(dislikes, userID) {
			return remove(likes, userID), remove(dislikes, userID)
		}
		return remove(likes, userID), add(dislikes, userID)
	default:
		if contains(likes, userID) {
			return remove(likes, userID), remove(dislikes, userID)
		}
		return add(likes, userID), remove(dislikes, userID)
	}
}

func add(list []string, id string) []string {
	next := make([]string, 0, len(list)+1)
	next = append(next, list...)
	return append(next, id)
}

func remove(list []string, id string) []string {
	next := make([]string, 0, len(list))
	for _, item := range list {
		if item == id {
			continue
		}
		next = append(next, item)
	}
	return next
}
