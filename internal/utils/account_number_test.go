package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccountNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^AC\d{13}$`)
	for i := 0; i < 100; i++ {
		num, err := GenerateAccountNumber()
		require.NoError(t, err)
		assert.Regexp(t, pattern, num)
	}
}

func TestGenerateAccountNumber_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		num, err := GenerateAccountNumber()
		require.NoError(t, err)
		seen[num] = true
	}
	// 100 draws from a 10^13 space colliding down to a handful would mean a
	// broken entropy source.
	assert.Greater(t, len(seen), 95)
}
