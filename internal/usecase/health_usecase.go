package usecase

import (
	"context"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) domain.HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{"status": "ok", "database": "ok"}
	if err := u.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	}
	return status
}
