package pathsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortNaturalOrder(t *testing.T) {
	paths := []string{
		"revoked-10.bin.gz",
		"revoked-2.bin.gz",
		"revoked-1.bin.gz",
		"revoked-20.bin.gz",
	}
	Sort(paths)
	assert.Equal(t, []string{
		"revoked-1.bin.gz",
		"revoked-2.bin.gz",
		"revoked-10.bin.gz",
		"revoked-20.bin.gz",
	}, paths)
}

func TestLessPlainLexicalFallback(t *testing.T) {
	assert.True(t, Less("abc", "abd"))
	assert.False(t, Less("abd", "abc"))
	assert.True(t, Less("abc", "abcd"))
}

func TestLessNumericRuns(t *testing.T) {
	assert.True(t, Less("file9.gz", "file10.gz"))
	assert.False(t, Less("file10.gz", "file9.gz"))
	assert.True(t, Less("file007.gz", "file8.gz"))
}

func TestSortStableOnTies(t *testing.T) {
	paths := []string{"a.gz", "a.gz", "a.gz"}
	Sort(paths)
	assert.Equal(t, []string{"a.gz", "a.gz", "a.gz"}, paths)
}
