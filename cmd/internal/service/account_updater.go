package service

import (
	"localizebackend/cmd/internal/domain/entity"
	"localizebackend/cmd/internal/domain/policy"
	"localizebackend/cmd/internal/utils"
	"localizebackend/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// accountUpdater acts as a "Change Set" context.
// It stops at the first error and tracks if a save is actually needed.
type accountUpdater struct {
	repo   AccountRepository
	policy *policy.PasswordPolicy
	target *entity.Account

	// State
	err   apierror.ErrorResponse
	dirty bool
}

func (u *accountUpdater) setName(newVal string) {
	if u.err != nil || utils.IsBlank(newVal) || newVal == u.target.Name {
		return
	}

	u.target.Name = newVal
	u.dirty = true
}

func (u *accountUpdater) setEmail(newVal string) {
	if u.err != nil || utils.IsBlank(newVal) || newVal == u.target.Email {
		return
	}

	taken, err := u.repo.ExistsByEmail(newVal, u.target.ID)
	if err != nil {
		log.Errorf("failed to check email availability for account %s: %v", u.target.ID, err)
		u.err = apierror.InternalServerError
		return
	}

	if taken {
		u.err = apierror.EmailTakenError
		return
	}

	u.target.Email = newVal
	u.dirty = true
}

func (u *accountUpdater) setPassword(current, next, confirm string) {
	if u.err != nil {
		return
	}

	digest, err := u.policy.CheckChange(current, next, confirm, u.target.PasswordHash)
	if err != nil {
		u.err = err
		return
	}

	if digest == "" {
		return
	}

	u.target.PasswordHash = digest
	u.dirty = true
}
