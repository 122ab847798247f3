package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mkamau/collegehub/internal/pkg/apperrors"
)

// usernameMaxAttempts bounds the collision probe. The original scheme probed
// without bound; a saturated namespace now falls back to one randomized
// suffix and then gives up with a distinct error.
const usernameMaxAttempts = 100

// allocateUsername produces a unique login name: lowercase first name plus
// the last four characters of the identification number, with an
// incrementing integer suffix on collision.
func (s *AdmissionService) allocateUsername(ctx context.Context, firstName, idNumber string) (string, error) {
	tail := idNumber
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	base := strings.ToLower(firstName + tail)

	candidate := base
	for i := 0; i < usernameMaxAttempts; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s%d", base, i)
		}
		taken, err := s.store.UsernameExists(ctx, candidate)
		if err != nil {
			s.logger.Error().Err(err).Str("candidate", candidate).Msg("Failed to probe username")
			return "", apperrors.ErrAdmissionFailed
		}
		if !taken {
			return candidate, nil
		}
	}

	// Randomized fallback before giving up
	candidate = base + strings.SplitN(uuid.NewString(), "-", 2)[0]
	taken, err := s.store.UsernameExists(ctx, candidate)
	if err != nil {
		s.logger.Error().Err(err).Str("candidate", candidate).Msg("Failed to probe username")
		return "", apperrors.ErrAdmissionFailed
	}
	if taken {
		return "", apperrors.ErrUsernameExhausted
	}

	return candidate, nil
}
