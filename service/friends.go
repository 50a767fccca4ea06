// service/friends.go
package service

import "borccu-api/models"

type FriendshipStatus string

const (
	StatusFriend  FriendshipStatus = "friend"
	StatusPending FriendshipStatus = "pending"
	StatusAddable FriendshipStatus = "addable"
)

// Suggestion is a profile from a directory search plus how it relates to the
// viewing user.
type Suggestion struct {
	Profile models.User      `json:"profile"`
	Status  FriendshipStatus `json:"status"`
}

// ClassifyCandidates labels each candidate profile as friend, pending or
// addable. The viewing user is dropped from the list. Friend wins over
// pending when a candidate somehow sits in both sets.
func ClassifyCandidates(currentUserID uint, candidates []models.User, friendIDs, pendingIDs map[uint]bool) []Suggestion {
	out := make([]Suggestion, 0, len(candidates))
	for _, p := range candidates {
		if p.ID == currentUserID {
			continue
		}
		status := StatusAddable
		switch {
		case friendIDs[p.ID]:
			status = StatusFriend
		case pendingIDs[p.ID]:
			status = StatusPending
		}
		out = append(out, Suggestion{Profile: p, Status: status})
	}
	return out
}
