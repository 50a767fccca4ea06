package service

import (
	"testing"

	"borccu-api/models"
)

func TestClassifyCandidates(t *testing.T) {
	candidates := []models.User{
		{ID: 1, FullName: "Me"},
		{ID: 2, FullName: "Already Friend"},
		{ID: 3, FullName: "Pending"},
		{ID: 4, FullName: "Stranger"},
		{ID: 5, FullName: "Both Sets"},
	}
	friendIDs := map[uint]bool{2: true, 5: true}
	pendingIDs := map[uint]bool{3: true, 5: true}

	got := ClassifyCandidates(1, candidates, friendIDs, pendingIDs)

	if len(got) != 4 {
		t.Fatalf("got %d suggestions, want 4 (current user excluded)", len(got))
	}

	want := map[uint]FriendshipStatus{
		2: StatusFriend,
		3: StatusPending,
		4: StatusAddable,
		5: StatusFriend, // friend wins over pending
	}
	for _, s := range got {
		if s.Profile.ID == 1 {
			t.Error("current user leaked into suggestions")
		}
		if want[s.Profile.ID] != s.Status {
			t.Errorf("user %d classified %s, want %s", s.Profile.ID, s.Status, want[s.Profile.ID])
		}
	}
}

func TestClassifyCandidates_Empty(t *testing.T) {
	got := ClassifyCandidates(1, nil, nil, nil)
	if len(got) != 0 {
		t.Errorf("got %d suggestions from empty input", len(got))
	}

	got = ClassifyCandidates(1, []models.User{{ID: 2}}, nil, nil)
	if len(got) != 1 || got[0].Status != StatusAddable {
		t.Errorf("nil sets should classify everyone addable, got %+v", got)
	}
}
