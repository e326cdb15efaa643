package usecase

import (
	"context"
	"strings"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
)

type collaborationUsecase struct {
	collabRepo  domain.CollaborationRepository
	profileRepo domain.ProfileRepository
}

func NewCollaborationUsecase(collabRepo domain.CollaborationRepository, profileRepo domain.ProfileRepository) domain.CollaborationUsecase {
	return &collaborationUsecase{
		collabRepo:  collabRepo,
		profileRepo: profileRepo,
	}
}

func currentProfileID(ctx context.Context) (string, error) {
	profileID, ok := ctx.Value(domain.KeyProfileID).(string)
	if !ok || profileID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return profileID, nil
}

// Send creates a pending request from the authenticated profile.
// Self-requests are rejected; duplicate pending requests to the same
// target are permitted.
func (u *collaborationUsecase) Send(ctx context.Context, toProfileID, message string) (*domain.CollaborationRequest, error) {
	fromProfileID, err := currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(message) == "" {
		return nil, apperror.BadRequest("Message is required")
	}
	if toProfileID == "" {
		return nil, apperror.BadRequest("Recipient is required")
	}
	if toProfileID == fromProfileID {
		return nil, apperror.BadRequest("You cannot send a collaboration request to yourself")
	}

	target, err := u.profileRepo.GetByID(ctx, toProfileID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.Role != domain.RoleUser {
		return nil, apperror.NotFound("Recipient profile not found")
	}

	request := &domain.CollaborationRequest{
		FromProfileID: fromProfileID,
		ToProfileID:   toProfileID,
		Message:       message,
	}
	if err := u.collabRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// Respond moves a pending request to accepted or rejected. Only the
// receiving profile may do this, and a terminal request stays put.
func (u *collaborationUsecase) Respond(ctx context.Context, requestID, status string) error {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return err
	}

	if status != domain.CollaborationAccepted && status != domain.CollaborationRejected {
		return apperror.BadRequest("Status must be accepted or rejected")
	}

	affected, err := u.collabRepo.UpdateStatus(ctx, requestID, profileID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either not addressed to this profile or already answered;
		// look it up to report which.
		existing, err := u.collabRepo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound("Collaboration request not found")
		}
		if existing.ToProfileID != profileID {
			return apperror.Forbidden("Only the recipient can respond to a request")
		}
		return apperror.Conflict("Request has already been answered")
	}
	return nil
}

func (u *collaborationUsecase) Sent(ctx context.Context) ([]domain.CollaborationRequest, error) {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return nil, err
	}
	return u.collabRepo.ListSent(ctx, profileID)
}

func (u *collaborationUsecase) Received(ctx context.Context) ([]domain.ReceivedRequest, error) {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return nil, err
	}
	return u.collabRepo.ListReceivedPending(ctx, profileID)
}
