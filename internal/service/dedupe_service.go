package service

import (
	"context"
	"sort"
	"strings"

	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RelationCounts carries how many records reference a customer.
type RelationCounts struct {
	Appointments int64
	Purchases    int64
}

// DedupeResult summarizes one merge run.
type DedupeResult struct {
	GroupsMerged           int
	DuplicatesDeactivated  int
	AppointmentsReassigned int64
	PurchasesReassigned    int64
}

// DedupeService consolidates duplicate customer rows. It is an offline
// utility run via its own binary, not a request-path component.
type DedupeService struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	apptRepo     repository.AppointmentRepository
	purchaseRepo repository.PackagePurchaseRepository
}

func NewDedupeService(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	apptRepo repository.AppointmentRepository,
	purchaseRepo repository.PackagePurchaseRepository,
) *DedupeService {
	return &DedupeService{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		apptRepo:     apptRepo,
		purchaseRepo: purchaseRepo,
	}
}

// ScoreCustomer ranks a customer row by field completeness plus how much
// history hangs off it. The highest-scoring row of a duplicate group becomes
// the canonical record.
func ScoreCustomer(user *entity.User, counts RelationCounts) int64 {
	var score int64
	if strings.TrimSpace(user.Email) != "" {
		score += 10
	}
	if strings.TrimSpace(user.PhoneNumber) != "" {
		score += 10
	}
	if strings.TrimSpace(user.FullName) != "" {
		score += 5
	}
	score += counts.Appointments * 3
	score += counts.Purchases * 3
	return score
}

// PickCanonical returns the highest-scoring user; ties go to the oldest row.
// The input slice is not modified.
func PickCanonical(users []entity.User, counts map[uuid.UUID]RelationCounts) *entity.User {
	if len(users) == 0 {
		return nil
	}

	best := &users[0]
	bestScore := ScoreCustomer(best, counts[best.ID])
	for i := 1; i < len(users); i++ {
		candidate := &users[i]
		score := ScoreCustomer(candidate, counts[candidate.ID])
		if score > bestScore || (score == bestScore && candidate.CreatedAt.Before(best.CreatedAt)) {
			best = candidate
			bestScore = score
		}
	}
	return best
}

// GroupDuplicates buckets customers by normalized email, then by phone for
// rows not already grouped by email. Only groups with 2+ members are kept.
func GroupDuplicates(users []entity.User) [][]entity.User {
	byEmail := make(map[string][]entity.User)
	for _, u := range users {
		key := strings.ToLower(strings.TrimSpace(u.Email))
		if key == "" {
			continue
		}
		byEmail[key] = append(byEmail[key], u)
	}

	grouped := make(map[uuid.UUID]bool)
	var groups [][]entity.User
	for _, members := range byEmail {
		if len(members) < 2 {
			continue
		}
		groups = append(groups, members)
		for _, m := range members {
			grouped[m.ID] = true
		}
	}

	byPhone := make(map[string][]entity.User)
	for _, u := range users {
		if grouped[u.ID] {
			continue
		}
		key := normalizePhone(u.PhoneNumber)
		if key == "" {
			continue
		}
		byPhone[key] = append(byPhone[key], u)
	}
	for _, members := range byPhone {
		if len(members) < 2 {
			continue
		}
		groups = append(groups, members)
	}

	// Deterministic order across runs.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0].ID.String() < groups[j][0].ID.String()
	})
	return groups
}

// Run finds duplicate customer groups and merges each one in its own
// transaction: history moves to the canonical row, duplicates deactivate.
func (s *DedupeService) Run(ctx context.Context) (*DedupeResult, error) {
	candidates, err := s.userRepo.FindDuplicateCandidates(s.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	groups := GroupDuplicates(candidates)
	if len(groups) == 0 {
		s.log.Info("No duplicate customers found")
		return &DedupeResult{}, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, u := range candidates {
		ids = append(ids, u.ID)
	}
	apptCounts, err := s.apptRepo.CountByCustomer(s.db.WithContext(ctx), ids)
	if err != nil {
		return nil, err
	}
	purchaseCounts, err := s.purchaseRepo.CountByCustomer(s.db.WithContext(ctx), ids)
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]RelationCounts, len(ids))
	for _, id := range ids {
		counts[id] = RelationCounts{
			Appointments: apptCounts[id],
			Purchases:    purchaseCounts[id],
		}
	}

	result := &DedupeResult{}
	for _, group := range groups {
		if err := s.mergeGroup(ctx, group, counts, result); err != nil {
			return nil, err
		}
	}

	s.log.Infof("Dedupe complete: %d groups merged, %d duplicates deactivated",
		result.GroupsMerged, result.DuplicatesDeactivated)
	return result, nil
}

func (s *DedupeService) mergeGroup(ctx context.Context, group []entity.User, counts map[uuid.UUID]RelationCounts, result *DedupeResult) error {
	canonical := PickCanonical(group, counts)

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for i := range group {
		dup := &group[i]
		if dup.ID == canonical.ID {
			continue
		}

		moved, err := s.apptRepo.ReassignCustomer(tx, dup.ID, canonical.ID)
		if err != nil {
			return err
		}
		result.AppointmentsReassigned += moved

		moved, err = s.purchaseRepo.ReassignCustomer(tx, dup.ID, canonical.ID)
		if err != nil {
			return err
		}
		result.PurchasesReassigned += moved

		dup.IsActive = false
		if err := s.userRepo.Update(tx, dup); err != nil {
			return err
		}
		result.DuplicatesDeactivated++

		s.log.Infof("Merged customer %s into %s", dup.ID, canonical.ID)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	result.GroupsMerged++
	return nil
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
