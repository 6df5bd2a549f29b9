package auth

import "testing"

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if first == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}
}

func TestCheckPassword_Match(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CheckPassword("correct horse", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if CheckPassword("wrong horse", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must fail verification")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("empty hash must fail verification")
	}
}
