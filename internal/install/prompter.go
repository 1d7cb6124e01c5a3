package install

import (
	"errors"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// Prompter asks the user for decisions the pipeline cannot make alone.
type Prompter interface {
	AcceptLicense() (bool, error)
}

// PromptFuncs adapts optional prompt callbacks into a Prompter.
type PromptFuncs struct {
	AcceptLicenseFunc func() (bool, error)
}

// AcceptLicense asks whether the user accepts the MSVC license.
// It returns ErrLicenseNotAccepted when no callback is configured.
func (p PromptFuncs) AcceptLicense() (bool, error) {
	if p.AcceptLicenseFunc == nil {
		return false, ErrLicenseNotAccepted
	}
	return p.AcceptLicenseFunc()
}

// ErrLicenseNotAccepted reports that the MSVC download was refused or could
// not be confirmed.
var ErrLicenseNotAccepted = errors.New(messages.InstallLicenseNotAccepted)

// confirmLicense succeeds when the license was accepted up front or through prompter.
func confirmLicense(accepted bool, prompter Prompter) error {
	if accepted {
		return nil
	}
	if prompter == nil {
		return ErrLicenseNotAccepted
	}
	ok, err := prompter.AcceptLicense()
	if err != nil {
		return err
	}
	if !ok {
		return ErrLicenseNotAccepted
	}
	return nil
}
