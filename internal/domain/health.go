package domain

import "context"

type HealthUsecase interface {
	// Check reports the status of the service's dependencies.
	Check(ctx context.Context) map[string]string
}
