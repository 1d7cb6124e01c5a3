package doctor

import (
	"fmt"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// LookPathFunc resolves an executable name on PATH. exec.LookPath satisfies it.
type LookPathFunc func(file string) (string, error)

// RequiredDependencies are the host executables every operation needs.
var RequiredDependencies = []string{"wine", "winetricks", "git", "msiextract", "winbindd", "python3"}

// CheckDependencies resolves every name in deps. ok is false iff at least one
// name is unresolvable; missing holds exactly those names in list order.
func CheckDependencies(lookPath LookPathFunc, deps []string) (bool, []string) {
	var missing []string
	for _, dep := range deps {
		if _, err := lookPath(dep); err != nil {
			missing = append(missing, dep)
		}
	}
	return len(missing) == 0, missing
}

// DependencyResults reports each dependency as its own result.
func DependencyResults(lookPath LookPathFunc, deps []string) []Result {
	results := make([]Result, 0, len(deps))
	for _, dep := range deps {
		path, err := lookPath(dep)
		if err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameDependencies,
				Message:        fmt.Sprintf(messages.DoctorDependencyMissingFmt, dep),
				Recommendation: fmt.Sprintf(messages.DoctorDependencyMissingRecommendFmt, dep),
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameDependencies,
			Message:   fmt.Sprintf(messages.DoctorDependencyFoundFmt, dep, path),
		})
	}
	return results
}
