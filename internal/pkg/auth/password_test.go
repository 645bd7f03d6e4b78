package auth

import "testing"

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must differ from password")
	}
	if err := h.Compare(hash, "s3cret"); err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)
	if h.cost == 0 {
		t.Fatal("expected default cost to be applied")
	}
}
