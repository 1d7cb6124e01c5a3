package install

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/conn-castle/linux-msvc/internal/clients"
)

// WinetricksURL is the upstream winetricks script fetched into the cache
// unless the host copy is requested.
const WinetricksURL = "https://raw.githubusercontent.com/Winetricks/winetricks/master/src/winetricks"

// configureWine switches the prefix to Windows 10 and restarts the wine server
// so the new prefix is fully booted.
func (inst *installer) configureWine(ctx context.Context) error {
	name, args, err := inst.winetricks(ctx)
	if err != nil {
		return err
	}
	if err := inst.run(ctx, "", name, append(args, "settings", "win10")...); err != nil {
		return err
	}
	// wineserver -k exits non-zero when no server is running.
	if err := inst.run(ctx, "", "wineserver", "-k"); err != nil {
		var toolErr *clients.ToolError
		if !errors.As(err, &toolErr) {
			return err
		}
		inst.logger.Debug("wineserver -k reported no running server", zap.Int("code", toolErr.Code))
	}
	if err := inst.run(ctx, "", "wineserver", "-p"); err != nil {
		return err
	}
	return inst.run(ctx, "", "wine", "wineboot")
}

// winetricks returns the command that runs winetricks: the host binary, or
// the cached upstream script run through sh.
func (inst *installer) winetricks(ctx context.Context) (string, []string, error) {
	if inst.cfg.UseSystemWinetricks {
		return "winetricks", nil, nil
	}
	script, err := inst.fetcher.Fetch(ctx, WinetricksURL, "winetricks")
	if err != nil {
		return "", nil, err
	}
	return "sh", []string{script}, nil
}
