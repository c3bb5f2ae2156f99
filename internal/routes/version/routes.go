package version

import (
	"os/exec"
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
)

const unknownCommit = "unknown"

var Version = models.VersionResponse{Commit: findCommit()}

// findCommit returns the commit the binary was built from, falling back to the
// checkout the process runs in.
func findCommit() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return setting.Value
			}
		}
	}

	output, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return unknownCommit
	}

	commit := strings.TrimSpace(string(output))
	if commit == "" {
		return unknownCommit
	}
	return commit
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(Version)
}
