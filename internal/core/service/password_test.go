package service

import "testing"

func TestBase64CodecRoundTrip(t *testing.T) {
	codec := Base64Codec{}

	encoded := codec.Encode("access")
	if encoded == "access" {
		t.Fatal("expected encoded value to differ from input")
	}

	decoded, err := codec.Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != "access" {
		t.Fatalf("got %q, want %q", decoded, "access")
	}
}

func TestBase64CodecDeterministic(t *testing.T) {
	codec := Base64Codec{}
	if codec.Encode("secret123") != codec.Encode("secret123") {
		t.Fatal("expected identical inputs to encode identically")
	}
}

func TestBase64CodecDecodeInvalid(t *testing.T) {
	codec := Base64Codec{}
	if _, err := codec.Decode("not base64 !!!"); err == nil {
		t.Fatal("expected an error for invalid input")
	}
}
