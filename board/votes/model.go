package votes

// VoteType is the direction of a vote.
type VoteType int

const (
	Up VoteType = iota + 1
	Down
)

func (k VoteType) String() string {
	if k == Down {
		return "dislike"
	}
	return "like"
}

// Votable is any node carrying like/dislike user sets.
type Votable interface {
	VotableID() string
	Likes() []string
	Dislikes() []string
}

// Score of a node. Recomputed on every call since the sets mutate.
func Score(v Votable) int {
	return len(v.Likes()) - len(v.Dislikes())
}

func HasLiked(v Votable, userID string) bool {
	return contains(v.Likes(), userID)
}

func HasDisliked(v Votable, userID string) bool {
	return contains(v.Dislikes(), userID)
}

func contains(list []string, id string) bool {
	for _, item := range list {
		if item == id {
			return true
		}
	}
	return false
}
