// ABOUTME: Shared helper for invoking platform wallpaper tools
// ABOUTME: Surfaces the tool's output in the returned error

package wallpaper

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// runCommand runs a platform tool and folds its output into the error
func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if out := strings.TrimSpace(string(output)); out != "" {
			return fmt.Errorf("%s failed: %w: %s", name, err, out)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
