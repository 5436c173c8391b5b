package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("p4ssw0rd", 4) // minimum cost keeps the test fast
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "p4ssw0rd" {
		t.Fatal("hash equals plaintext")
	}
	if !VerifyPassword(hash, "p4ssw0rd") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyPassword_BadHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Fatal("malformed hash accepted")
	}
}
