package bot

import (
	"context"
	"time"

	"github.com/hay-kot/hwbot/internal/core/config"
	"github.com/hay-kot/hwbot/internal/core/doctor"
)

// doctorWindow is how far back the online check queries.
const doctorWindow = 24 * time.Hour

// DoctorService runs health checks on the bot setup.
type DoctorService struct {
	config  *config.Config
	fetcher doctor.Fetcher
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(cfg *config.Config, fetcher doctor.Fetcher) *DoctorService {
	return &DoctorService{config: cfg, fetcher: fetcher}
}

// RunChecks executes the doctor checks and returns results. The API check
// only runs when online is set and a token is available.
func (d *DoctorService) RunChecks(ctx context.Context, configPath string, online, dryRun bool) []doctor.Result {
	checks := []doctor.Check{
		doctor.NewConfigCheck(configPath),
		doctor.NewCredentialsCheck(d.config.Credentials, !dryRun),
	}

	if online && d.config.Credentials.PracticumToken != "" {
		checks = append(checks, doctor.NewAPICheck(d.fetcher, doctorWindow))
	}

	return doctor.RunAll(ctx, checks)
}
