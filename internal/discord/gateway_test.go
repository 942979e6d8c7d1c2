package discord

import "testing"

func TestSessionKey(t *testing.T) {
	if got := sessionKey("chan1", "user1"); got != "chan1:user1" {
		t.Errorf("sessionKey = %q", got)
	}
	if sessionKey("chan1", "user1") == sessionKey("chan1", "user2") {
		t.Error("Different users in one channel must get different sessions")
	}
	if sessionKey("chan1", "user1") == sessionKey("chan2", "user1") {
		t.Error("Same user in different channels must get different sessions")
	}
}
