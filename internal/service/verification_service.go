package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Errors

var (
	// ErrCodeMismatch is returned when the submitted code does not match the
	// stored one, or no code is pending for the email.
	ErrCodeMismatch = errors.New("verification code is invalid or expired")
)

const verificationKeyPrefix = "verification_code:"

// VerificationService owns the pending registration codes. The store is
// Redis with an explicit TTL, never an in-process map: codes must survive
// restarts and be shared across instances.
type VerificationService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewVerificationService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *VerificationService {
	return &VerificationService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// IssueCode generates a 6-digit code for the email and stores it under the
// configured TTL, replacing any previous pending code. Delivery is a
// collaborator concern; the code is returned to the caller for dispatch.
func (s *VerificationService) IssueCode(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	key := verificationKeyPrefix + email
	if err := s.redisClient.Set(ctx, key, code, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to store verification code for %s: %+v", email, err)
		return "", err
	}

	s.log.Infof("Verification code issued for %s (expires in %s)", email, s.ttl)
	return code, nil
}

// VerifyCode checks the submitted code and consumes it on success. A code is
// single-use: a second verification with the same code fails.
func (s *VerificationService) VerifyCode(ctx context.Context, email, code string) error {
	key := verificationKeyPrefix + email

	stored, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCodeMismatch
		}
		s.log.Warnf("Failed to read verification code for %s: %+v", email, err)
		return err
	}

	if stored != code {
		return ErrCodeMismatch
	}

	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to consume verification code for %s: %+v", email, err)
		return err
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
