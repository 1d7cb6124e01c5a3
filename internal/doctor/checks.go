package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

var (
	loadConfigFunc = config.Load
	statFunc       = os.Stat
)

// CheckConfig loads the config file. It returns the config when loading
// succeeded so resource checks can run.
func CheckConfig(paths config.Paths) ([]Result, *config.Config) {
	cfg, err := loadConfigFunc(paths.ConfigPath)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return []Result{{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameConfig,
				Message:        fmt.Sprintf(messages.DoctorConfigMissingFmt, paths.ConfigPath),
				Recommendation: messages.DoctorConfigMissingRecommend,
			}}, nil
		}
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, paths.ConfigPath),
	}}, cfg
}

// resource is a directory under the destination that a check expects.
type resource struct {
	label string
	path  string
	// resetTarget names the config reset argument that restores the resource.
	// Empty means the resource is optional and a missing directory only warns.
	resetTarget string
}

// CheckResources verifies the directory resources of an installation.
// getenv resolves the wine prefix when the config disables the override.
func CheckResources(cfg *config.Config, getenv func(string) string) []Result {
	layout, err := cfg.Layout()
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameResources,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}
	}
	prefix, err := cfg.WinePrefix(getenv)
	if err != nil {
		prefix = layout.WinePrefix
	}

	resources := []resource{
		{label: "msvc", path: layout.Msvc, resetTarget: "msvc"},
		{label: "msvc-wine-repo", path: layout.MsvcWineRepo, resetTarget: "msvc"},
		{label: "wine prefix", path: prefix, resetTarget: "wine_prefix"},
		{label: "vcpkg", path: layout.Vcpkg},
		{label: "cache", path: layout.Cache},
	}
	if cfg.CopyCrossFiles {
		resources = append(resources, resource{label: "cross_files", path: layout.CrossFiles})
	}

	results := make([]Result, 0, len(resources))
	for _, r := range resources {
		results = append(results, checkResource(r))
	}
	return results
}

func checkResource(r resource) Result {
	info, err := statFunc(r.path)
	switch {
	case err == nil && info.IsDir():
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameResources,
			Message:   fmt.Sprintf(messages.DoctorResourcePresentFmt, r.label, r.path),
		}
	case err == nil:
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameResources,
			Message:        fmt.Sprintf(messages.DoctorResourceNotDirFmt, r.label, r.path),
			Recommendation: messages.DoctorResourceNotDirRecommend,
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameResources,
			Message:   fmt.Sprintf(messages.DoctorResourceStatFailedFmt, r.path, err),
		}
	case r.resetTarget == "":
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameResources,
			Message:        fmt.Sprintf(messages.DoctorResourceMissingFmt, r.label, r.path),
			Recommendation: fmt.Sprintf(messages.DoctorResourceOptionalRecommendFmt, r.label),
		}
	default:
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameResources,
			Message:        fmt.Sprintf(messages.DoctorResourceMissingFmt, r.label, r.path),
			Recommendation: fmt.Sprintf(messages.DoctorResourceResetRecommendFmt, r.resetTarget),
		}
	}
}
