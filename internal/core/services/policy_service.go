package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/adapters/persistence/repositories"
	"intia-api/internal/core/domain"
	"intia-api/internal/pkg/metrics"
	"intia-api/internal/pkg/validation"

	"gorm.io/gorm"
)

var (
	policyTypes = []string{
		string(domain.PolicyTypeAuto),
		string(domain.PolicyTypeSante),
		string(domain.PolicyTypeMaison),
		string(domain.PolicyTypeVoyage),
		string(domain.PolicyTypeAutre),
	}
	policyStatuses = []string{
		string(domain.PolicyActive),
		string(domain.PolicyExpired),
		string(domain.PolicyCanceled),
	}
)

// PolicyService handles the policy ledger.
// Policies are not scoped by actor, unlike clients.
type PolicyService struct {
	policyRepo repositories.PolicyRepository
	clientRepo repositories.ClientRepository
	branchRepo repositories.BranchRepository
	metrics    *metrics.Metrics
}

// NewPolicyService creates a new policy service
func NewPolicyService(
	policyRepo repositories.PolicyRepository,
	clientRepo repositories.ClientRepository,
	branchRepo repositories.BranchRepository,
	m *metrics.Metrics,
) *PolicyService {
	return &PolicyService{
		policyRepo: policyRepo,
		clientRepo: clientRepo,
		branchRepo: branchRepo,
		metrics:    m,
	}
}

// Create creates a policy for an existing client and branch
func (s *PolicyService) Create(ctx context.Context, input *CreatePolicyInput) (*models.Policy, error) {
	policyNo := strings.TrimSpace(input.PolicyNo)
	policyType := strings.ToUpper(strings.TrimSpace(input.Type))
	status := strings.ToUpper(strings.TrimSpace(input.Status))
	if status == "" {
		status = string(domain.PolicyActive)
	}

	v := validation.Violations{}
	validation.Required("policyNo", policyNo, v)
	validation.OneOf("type", policyType, policyTypes, v)
	validation.OneOf("status", status, policyStatuses, v)
	validation.PositiveInt("premium", input.Premium, v)
	if !v.Empty() {
		return nil, domain.Invalid(v.Error())
	}

	if err := s.requireClient(ctx, input.ClientID); err != nil {
		return nil, err
	}
	if err := requireBranch(ctx, s.branchRepo, input.BranchID); err != nil {
		return nil, err
	}

	start, errStart := ParseDate(input.StartDate)
	end, errEnd := ParseDate(input.EndDate)
	if errStart != nil || errEnd != nil {
		return nil, domain.ErrInvalidDates
	}
	if !end.After(start) {
		return nil, domain.ErrEndBeforeStart
	}

	policy := &models.Policy{
		PolicyNo:  policyNo,
		Type:      policyType,
		Status:    status,
		StartDate: start,
		EndDate:   end,
		Premium:   input.Premium,
		ClientID:  input.ClientID,
		BranchID:  input.BranchID,
	}
	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, err
	}

	s.metrics.IncPoliciesCreated()
	log.Printf("📄 Policy created: %s (id=%d client=%d)", policy.PolicyNo, policy.ID, policy.ClientID)
	return s.FindOne(ctx, policy.ID)
}

// FindAll lists policies matching every non-nil filter field, newest first
func (s *PolicyService) FindAll(ctx context.Context, filter PolicyFilter) ([]*models.Policy, error) {
	policies, err := s.policyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if policies == nil {
		policies = []*models.Policy{}
	}
	return policies, nil
}

// FindOne gets a policy with its client and branch
func (s *PolicyService) FindOne(ctx context.Context, id uint) (*models.Policy, error) {
	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}
	return policy, nil
}

// Update patches a policy. Dates present in the patch are re-parsed and,
// when both are present, checked against each other. A single date is not
// compared with the stored value of the other one.
func (s *PolicyService) Update(ctx context.Context, id uint, input *UpdatePolicyInput) (*models.Policy, error) {
	if _, err := s.FindOne(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	v := validation.Violations{}

	if input.PolicyNo != nil {
		policyNo := strings.TrimSpace(*input.PolicyNo)
		validation.Required("policyNo", policyNo, v)
		fields["policy_no"] = policyNo
	}
	if input.Type != nil {
		policyType := strings.ToUpper(strings.TrimSpace(*input.Type))
		validation.OneOf("type", policyType, policyTypes, v)
		fields["type"] = policyType
	}
	if input.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*input.Status))
		validation.OneOf("status", status, policyStatuses, v)
		fields["status"] = status
	}
	if input.Premium != nil {
		validation.PositiveInt("premium", *input.Premium, v)
		fields["premium"] = *input.Premium
	}
	if !v.Empty() {
		return nil, domain.Invalid(v.Error())
	}

	var start, end time.Time
	var err error
	if input.StartDate != nil {
		if start, err = ParseDate(*input.StartDate); err != nil {
			return nil, domain.ErrInvalidStartDate
		}
		fields["start_date"] = start
	}
	if input.EndDate != nil {
		if end, err = ParseDate(*input.EndDate); err != nil {
			return nil, domain.ErrInvalidEndDate
		}
		fields["end_date"] = end
	}
	if input.StartDate != nil && input.EndDate != nil && !end.After(start) {
		return nil, domain.ErrEndBeforeStart
	}

	if input.ClientID != nil {
		if err := s.requireClient(ctx, *input.ClientID); err != nil {
			return nil, err
		}
		fields["client_id"] = *input.ClientID
	}
	if input.BranchID != nil {
		if err := requireBranch(ctx, s.branchRepo, *input.BranchID); err != nil {
			return nil, err
		}
		fields["branch_id"] = *input.BranchID
	}

	if err := s.policyRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, id)
}

// Remove cancels a policy instead of deleting the row
func (s *PolicyService) Remove(ctx context.Context, id uint) (*models.Policy, error) {
	if _, err := s.FindOne(ctx, id); err != nil {
		return nil, err
	}
	if err := s.policyRepo.SetStatus(ctx, id, domain.PolicyCanceled); err != nil {
		return nil, err
	}

	s.metrics.IncPoliciesCanceled()
	log.Printf("📄 Policy canceled: id=%d", id)
	return s.FindOne(ctx, id)
}

func (s *PolicyService) requireClient(ctx context.Context, id uint) error {
	exists, err := s.clientRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrClientNotFound
	}
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

// ParseDate accepts a calendar date (read as UTC midnight) or an ISO 8601 timestamp
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
