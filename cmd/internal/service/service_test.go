package service

import (
	"localizebackend/cmd/internal/domain/database"
	"localizebackend/cmd/internal/domain/database/repository"
	"localizebackend/cmd/internal/utils/validators"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), 1)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newValidator() *validator.Validate {
	v := validator.New()
	validators.Register(v)
	return v
}

type repos struct {
	accounts  *repository.DefaultAccountRepository
	companies *repository.DefaultCompanyRepository
}

func newRepos(t *testing.T) repos {
	db := newTestDB(t)
	return repos{
		accounts:  repository.NewAccountRepository(db),
		companies: repository.NewCompanyRepository(db),
	}
}

// fakeHasher keeps digests readable in assertions.
type fakeHasher struct{}

func (fakeHasher) Digest(plain string) string {
	return "h:" + plain
}

type fakeTokens struct {
	issued []uuid.UUID
}

func (f *fakeTokens) Issue(accountID uuid.UUID, _, _ string) (string, error) {
	f.issued = append(f.issued, accountID)
	return "token-" + accountID.String(), nil
}

// recordingMetrics counts every observation by name.
type recordingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counts: map[string]int{}}
}

func (r *recordingMetrics) inc(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[key]++
}

func (r *recordingMetrics) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[key]
}

func (r *recordingMetrics) IncrementAccountsRegistered() { r.inc("accounts_registered") }
func (r *recordingMetrics) ObserveLogin(outcome string) { r.inc("login_" + outcome) }
func (r *recordingMetrics) IncrementCompaniesCreated() { r.inc("companies_created") }
func (r *recordingMetrics) IncrementCompaniesReactivated() { r.inc("companies_reactivated") }
func (r *recordingMetrics) ObserveLookup(outcome string) { r.inc("lookup_" + outcome) }

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
