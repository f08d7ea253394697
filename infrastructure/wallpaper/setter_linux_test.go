//go:build linux

package wallpaper

import (
	"context"
	"strings"
	"testing"
)

func TestFileURI(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "plain path",
			path: "/tmp/iotd_wallpaper.bmp",
			want: "file:///tmp/iotd_wallpaper.bmp",
		},
		{
			name: "path with spaces",
			path: "/home/user/my pictures/wall.bmp",
			want: "file:///home/user/my%20pictures/wall.bmp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileURI(tt.path); got != tt.want {
				t.Errorf("fileURI(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRunCommand_Success(t *testing.T) {
	if err := runCommand(context.Background(), "true"); err != nil {
		t.Errorf("runCommand(true) returned error: %v", err)
	}
}

func TestRunCommand_FailureIncludesOutput(t *testing.T) {
	err := runCommand(context.Background(), "sh", "-c", "echo broken schema >&2; exit 1")

	if err == nil {
		t.Fatal("runCommand should fail")
	}
	if got := err.Error(); !strings.Contains(got, "broken schema") {
		t.Errorf("error %q should include the command output", got)
	}
}
