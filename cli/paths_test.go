package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParentDir(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"foo/bar.emojic", "foo"},
		{"bar.emojic", ""},
		{"a/b/c.emojic", "a/b"},
		{"/abs/file.emojic", "/abs"},
		{"/file.emojic", "/"},
		{"dir//file.emojic", "dir"},
		{"dir/", "dir"},
		{"", ""},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			assert.Equal(t, test.want, parentDir(test.path))
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"foo/bar.emojic", "bar"},
		{"bar.emojic", "bar"},
		{"noext", "noext"},
		{"a/archive.tar.gz", "archive.tar"},
		{".emojic", ".emojic"},
		{"x/.hidden.emojic", ".hidden"},
		{"trailing.", "trailing"},
		{"dir/", ""},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			assert.Equal(t, test.want, stem(test.path))
		})
	}
}

func TestJoinDir(t *testing.T) {
	assert.Equal(t, "a/b", joinDir("a", "b"))
	assert.Equal(t, "b", joinDir("", "b"))
	assert.Equal(t, "//b", joinDir("/", "b"))
}

func TestLibraryFileName(t *testing.T) {
	assert.Equal(t, "libfiles.a", LibraryFileName("files"))
}
