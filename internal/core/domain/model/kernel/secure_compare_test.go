package kernel_test

import (
	"testing"

	"settlement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestSecureCompare(t *testing.T) {
	t.Run("should match identical codes", func(t *testing.T) {
		assert.True(t, kernel.SecureCompare("483920", "483920"))
	})

	t.Run("should reject different codes of same length", func(t *testing.T) {
		assert.False(t, kernel.SecureCompare("483920", "483921"))
	})

	t.Run("should reject codes of different length", func(t *testing.T) {
		assert.False(t, kernel.SecureCompare("483920", "48392"))
		assert.False(t, kernel.SecureCompare("483920", "4839200"))
	})

	t.Run("should not trim or fold case", func(t *testing.T) {
		assert.False(t, kernel.SecureCompare("abcdef", "ABCDEF"))
		assert.False(t, kernel.SecureCompare("483920", " 483920"))
		assert.False(t, kernel.SecureCompare("483920", "483920 "))
	})

	t.Run("should match empty against empty only", func(t *testing.T) {
		assert.True(t, kernel.SecureCompare("", ""))
		assert.False(t, kernel.SecureCompare("x", ""))
	})
}
