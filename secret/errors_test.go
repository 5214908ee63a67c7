package secret

import (
	"errors"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	testCases := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeVault, "vault"},
		{ErrorTypeHash, "hash"},
		{ErrorTypeEncoding, "encoding"},
		{ErrorType(999), "unknown"}, // Invalid error type
	}

	for _, tc := range testCases {
		result := tc.errorType.String()
		if result != tc.expected {
			t.Errorf("For error type %v, expected '%s', got '%s'", tc.errorType, tc.expected, result)
		}
	}
}

func TestStoreErrorError(t *testing.T) {
	// Test error with target
	err := &StoreError{
		Type:      ErrorTypeVault,
		Operation: "read",
		Target:    "Poderosa-ssh://alice@example.com",
		Message:   "vault query failed",
		Err:       errors.New("access denied"),
	}

	expected := "vault error in read [Poderosa-ssh://alice@example.com]: vault query failed"
	if err.Error() != expected {
		t.Errorf("Expected error message '%s', got '%s'", expected, err.Error())
	}

	// Test error without target
	err2 := &StoreError{
		Type:      ErrorTypeVault,
		Operation: "open",
		Message:   "cannot open OS credential vault",
		Err:       errors.New("no backend available"),
	}

	expected2 := "vault error in open: cannot open OS credential vault"
	if err2.Error() != expected2 {
		t.Errorf("Expected error message '%s', got '%s'", expected2, err2.Error())
	}
}

func TestStoreErrorUnwrap(t *testing.T) {
	originalErr := errors.New("original error")
	storeErr := &StoreError{
		Type:      ErrorTypeHash,
		Operation: "read",
		Message:   "cannot read key file",
		Err:       originalErr,
	}

	if storeErr.Unwrap() != originalErr {
		t.Errorf("Expected unwrapped error to be original error, got %v", storeErr.Unwrap())
	}

	// Test with nil wrapped error
	storeErr2 := &StoreError{
		Type:      ErrorTypeHash,
		Operation: "read",
		Message:   "cannot read key file",
		Err:       nil,
	}

	if storeErr2.Unwrap() != nil {
		t.Errorf("Expected unwrapped error to be nil, got %v", storeErr2.Unwrap())
	}
}

func TestNewVaultError(t *testing.T) {
	originalErr := errors.New("service unavailable")
	storeErr := newVaultError("write", "Poderosa-ssh://alice@example.com", "vault write failed", originalErr)

	if storeErr.Type != ErrorTypeVault {
		t.Errorf("Expected error type vault, got %v", storeErr.Type)
	}
	if storeErr.Operation != "write" {
		t.Errorf("Expected operation 'write', got '%s'", storeErr.Operation)
	}
	if storeErr.Target != "Poderosa-ssh://alice@example.com" {
		t.Errorf("Expected target 'Poderosa-ssh://alice@example.com', got '%s'", storeErr.Target)
	}
	if storeErr.Err != originalErr {
		t.Errorf("Expected wrapped error to be original error, got %v", storeErr.Err)
	}
}

func TestNewHashError(t *testing.T) {
	originalErr := errors.New("permission denied")
	storeErr := newHashError("open", "/home/user/id_rsa", "cannot open key file", originalErr)

	if storeErr.Type != ErrorTypeHash {
		t.Errorf("Expected error type hash, got %v", storeErr.Type)
	}
	if storeErr.Target != "/home/user/id_rsa" {
		t.Errorf("Expected target '/home/user/id_rsa', got '%s'", storeErr.Target)
	}
}

func TestErrorChaining(t *testing.T) {
	// Test that errors.Is works with our custom error
	originalErr := errors.New("original")
	storeErr := newVaultError("read", "some-target", "vault query failed", originalErr)

	if !errors.Is(storeErr, originalErr) {
		t.Error("errors.Is should work with StoreError")
	}

	// Test that errors.As works with our custom error
	var storeErrPtr *StoreError
	if !errors.As(storeErr, &storeErrPtr) {
		t.Error("errors.As should work with StoreError")
	}
	if storeErrPtr.Type != ErrorTypeVault {
		t.Error("errors.As should preserve the correct error type")
	}
}
