package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type collaborationRepository struct {
	db *pgxpool.Pool
}

func NewCollaborationRepository(db *pgxpool.Pool) domain.CollaborationRepository {
	return &collaborationRepository{db: db}
}

func (r *collaborationRepository) Create(ctx context.Context, request *domain.CollaborationRequest) error {
	query := `
		INSERT INTO collaboration_requests (from_profile_id, to_profile_id, message, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING id, status, created_at`
	return r.db.QueryRow(ctx, query, request.FromProfileID, request.ToProfileID, request.Message).
		Scan(&request.ID, &request.Status, &request.CreatedAt)
}

func (r *collaborationRepository) GetByID(ctx context.Context, id string) (*domain.CollaborationRequest, error) {
	query := `
		SELECT id, from_profile_id, to_profile_id, message, status, created_at
		FROM collaboration_requests WHERE id = $1`
	var req domain.CollaborationRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.FromProfileID, &req.ToProfileID, &req.Message, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *collaborationRepository) ListSent(ctx context.Context, fromProfileID string) ([]domain.CollaborationRequest, error) {
	query := `
		SELECT id, from_profile_id, to_profile_id, message, status, created_at
		FROM collaboration_requests
		WHERE from_profile_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, fromProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sent requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.CollaborationRequest{}
	for rows.Next() {
		var req domain.CollaborationRequest
		if err := rows.Scan(&req.ID, &req.FromProfileID, &req.ToProfileID, &req.Message, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *collaborationRepository) ListReceivedPending(ctx context.Context, toProfileID string) ([]domain.ReceivedRequest, error) {
	query := `
		SELECT cr.id, cr.from_profile_id, cr.to_profile_id, cr.message, cr.status, cr.created_at,
			p.id, p.user_id, p.first_name, p.last_name, p.email, COALESCE(p.bio, ''), p.avatar_url,
			p.role, p.verified, p.verified_by, p.verified_at, p.created_at, p.updated_at
		FROM collaboration_requests cr
		JOIN profiles p ON p.id = cr.from_profile_id
		WHERE cr.to_profile_id = $1 AND cr.status = 'pending'
		ORDER BY cr.created_at DESC`
	rows, err := r.db.Query(ctx, query, toProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch received requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.ReceivedRequest{}
	for rows.Next() {
		var req domain.ReceivedRequest
		var from domain.Profile
		err := rows.Scan(
			&req.ID, &req.FromProfileID, &req.ToProfileID, &req.Message, &req.Status, &req.CreatedAt,
			&from.ID, &from.UserID, &from.FirstName, &from.LastName, &from.Email, &from.Bio, &from.AvatarURL,
			&from.Role, &from.Verified, &from.VerifiedBy, &from.VerifiedAt, &from.CreatedAt, &from.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		req.FromProfile = &from
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *collaborationRepository) UpdateStatus(ctx context.Context, id, toProfileID, status string) (int64, error) {
	// The WHERE clause enforces both the receiver-only rule and the
	// pending-only transition; a terminal request matches no row.
	query := `
		UPDATE collaboration_requests SET status = $1
		WHERE id = $2 AND to_profile_id = $3 AND status = 'pending'`
	tag, err := r.db.Exec(ctx, query, status, id, toProfileID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
