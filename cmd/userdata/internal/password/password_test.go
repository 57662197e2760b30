package password

import (
	"errors"
	"strings"
	"testing"
)

// TestHashProducesVerifiableArtifact covers the round trip for a range of
// plaintexts, including non-ASCII and separator-heavy inputs.
func TestHashProducesVerifiableArtifact(t *testing.T) {
	// Low cost keeps the test fast; the contract is cost-independent.
	plaintexts := []string{
		"MyAmazingPassw0rd",
		"p",
		"pass;word=with;separators",
		"ünïcode-påsswörd",
	}

	for _, plaintext := range plaintexts {
		t.Run(plaintext, func(t *testing.T) {
			artifact, err := HashWithCost(plaintext, 4)
			if err != nil {
				t.Fatalf("HashWithCost() error: %v", err)
			}
			if !strings.HasPrefix(artifact, "$2a$") {
				t.Errorf("expected standard bcrypt encoding, got %q", artifact)
			}

			ok, err := Verify(artifact, plaintext)
			if err != nil {
				t.Fatalf("Verify() error: %v", err)
			}
			if !ok {
				t.Error("correct password did not verify")
			}

			ok, err = Verify(artifact, plaintext+"x")
			if err != nil {
				t.Fatalf("Verify() error on mismatch: %v", err)
			}
			if ok {
				t.Error("wrong password verified")
			}
		})
	}
}

// TestHashNonDeterministic verifies each call salts independently.
func TestHashNonDeterministic(t *testing.T) {
	first, err := HashWithCost("samepassword", 4)
	if err != nil {
		t.Fatalf("first HashWithCost() error: %v", err)
	}
	second, err := HashWithCost("samepassword", 4)
	if err != nil {
		t.Fatalf("second HashWithCost() error: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same plaintext are identical; salt is not fresh")
	}
}

// TestVerifyMalformedArtifact verifies parse failures surface as
// ErrMalformedHash rather than a silent false.
func TestVerifyMalformedArtifact(t *testing.T) {
	artifacts := []string{
		"not-a-real-hash",
		"",
		"$9z$10$definitelynotbcrypt",
	}

	for _, artifact := range artifacts {
		ok, err := Verify(artifact, "anything")
		if ok {
			t.Errorf("Verify(%q) returned true", artifact)
		}
		if !errors.Is(err, ErrMalformedHash) {
			t.Errorf("Verify(%q) error = %v, want ErrMalformedHash", artifact, err)
		}
	}
}

// TestVerifyMismatchIsNotAnError pins the (false, nil) contract for wrong
// passwords so callers can rely on the error meaning "bad artifact".
func TestVerifyMismatchIsNotAnError(t *testing.T) {
	artifact, err := HashWithCost("right", 4)
	if err != nil {
		t.Fatalf("HashWithCost() error: %v", err)
	}

	ok, err := Verify(artifact, "wrong")
	if err != nil {
		t.Errorf("mismatch returned error %v, want nil", err)
	}
	if ok {
		t.Error("mismatch verified")
	}
}

// TestHashRejectsInvalidCost verifies cost errors surface as ErrEncoding.
func TestHashRejectsInvalidCost(t *testing.T) {
	if _, err := HashWithCost("pw", 99); !errors.Is(err, ErrEncoding) {
		t.Errorf("HashWithCost(cost=99) error = %v, want ErrEncoding", err)
	}
}

// TestLongPasswordTruncation documents the 72-byte bcrypt input limit:
// inputs agreeing on the first 72 bytes verify against the same artifact.
func TestLongPasswordTruncation(t *testing.T) {
	long := strings.Repeat("a", MaxPasswordBytes+10)

	artifact, err := HashWithCost(long, 4)
	if err != nil {
		t.Fatalf("HashWithCost() error on long input: %v", err)
	}

	ok, err := Verify(artifact, long)
	if err != nil || !ok {
		t.Fatalf("long password did not verify: ok=%v err=%v", ok, err)
	}

	// Differences beyond the limit are not security-relevant.
	ok, err = Verify(artifact, long[:MaxPasswordBytes]+"different-tail")
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if !ok {
		t.Error("tail beyond 72 bytes changed the verification result")
	}

	// Differences inside the limit still matter.
	ok, _ = Verify(artifact, strings.Repeat("b", MaxPasswordBytes))
	if ok {
		t.Error("different password verified")
	}
}
