package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// testCost uses bcrypt's minimum work factor so the suite stays fast.
// The hashing logic is identical at every cost; only the iteration count
// changes.
const testCost = bcrypt.MinCost

func newTestPasswordService(t *testing.T) *PasswordService {
	t.Helper()
	return NewPasswordServiceForTest(testCost)
}

func TestHashAndVerify_RoundTrip(t *testing.T) {
	ps := newTestPasswordService(t)

	hash, err := ps.Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "" {
		t.Fatal("Hash() returned empty string")
	}
	if hash == "Passw0rd!" {
		t.Fatal("Hash() returned the plaintext unchanged")
	}

	if err := ps.Verify(hash, "Passw0rd!"); err != nil {
		t.Errorf("Verify() with correct password: %v", err)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	ps := newTestPasswordService(t)

	hash, err := ps.Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if err := ps.Verify(hash, "wrong-password"); err == nil {
		t.Error("Verify() should fail for the wrong password")
	}
}

func TestHash_SamePasswordDifferentHashes(t *testing.T) {
	// bcrypt salts every hash, so the same input must never produce the
	// same output twice.
	ps := newTestPasswordService(t)

	h1, err := ps.Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	h2, err := ps.Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical — salt missing?")
	}
}

func TestHash_RejectsOverlongPassword(t *testing.T) {
	ps := newTestPasswordService(t)

	// 73 bytes — one over bcrypt's 72-byte input limit
	if _, err := ps.Hash(strings.Repeat("a", 73)); err == nil {
		t.Error("Hash() should reject passwords longer than 72 bytes")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	ps := newTestPasswordService(t)

	if err := ps.Verify("not-a-bcrypt-hash", "anything"); err == nil {
		t.Error("Verify() should fail for a malformed hash")
	}
}
