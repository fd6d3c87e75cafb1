package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// MaxDocumentSize is the hard cap on policy document uploads, enforced
// before the upload is attempted.
const MaxDocumentSize = 5 * 1024 * 1024

// DocumentUpload carries an optional attachment for a policy mutation.
type DocumentUpload struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

type PolicyService struct {
	vehicleService *VehicleService
	fileStore      ports.FileStore
	logger         ports.LoggerPort
	validate       *validator.Validate
}

func NewPolicyService(
	vehicleService *VehicleService,
	fileStore ports.FileStore,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *PolicyService {
	return &PolicyService{
		vehicleService: vehicleService,
		fileStore:      fileStore,
		logger:         logger,
		validate:       validate,
	}
}

// AddPolicy validates the candidate against the existing list, uploads the
// optional document and patches only the policy collection. An upload
// failure degrades to saving the policy without the attachment; the warning
// string tells the caller when that happened.
func (s *PolicyService) AddPolicy(ctx context.Context, plate string, policy domain.InsurancePolicy, doc *DocumentUpload) (*domain.Vehicle, string, error) {
	policy.Normalize()
	if err := s.validate.Struct(policy); err != nil {
		s.logger.Error("Policy validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, "", fmt.Errorf("validation error: %w", err)
	}

	if doc != nil && doc.Size > MaxDocumentSize {
		return nil, "", domain.ErrFileTooLarge
	}

	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, "", err
	}

	if err := domain.CanAddPolicy(policy, vehicle.Policies); err != nil {
		s.logger.Warn("Policy rejected", map[string]interface{}{
			"error": err.Error(),
			"plate": vehicle.Plate,
		})
		return nil, "", err
	}

	now := time.Now()
	policy.ID = strconv.FormatInt(now.UnixMilli(), 10)

	var warning string
	if doc != nil {
		document, err := s.uploadDocument(ctx, vehicle.Plate, policy.ID, doc, now)
		if err != nil {
			s.logger.Warn("Document upload failed, saving policy without attachment", map[string]interface{}{
				"error": err.Error(),
				"plate": vehicle.Plate,
			})
			warning = "document upload failed; policy saved without attachment"
		} else {
			policy.Document = document
		}
	}

	vehicle.Policies = append(vehicle.Policies, policy)

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionPolicies)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Policy added", map[string]interface{}{
		"plate":     updated.Plate,
		"policy_id": policy.ID,
		"company":   policy.Company,
	})

	return updated, warning, nil
}

// UpdatePolicy replaces a policy in place. Date ordering is still checked;
// overlap against siblings is not re-validated on edit.
func (s *PolicyService) UpdatePolicy(ctx context.Context, plate, policyID string, policy domain.InsurancePolicy) (*domain.Vehicle, error) {
	policy.Normalize()
	if err := s.validate.Struct(policy); err != nil {
		s.logger.Error("Policy validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if !policy.End.After(policy.Start) {
		return nil, domain.ErrPolicyDatesInverted
	}

	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range vehicle.Policies {
		if vehicle.Policies[i].ID == policyID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domain.ErrPolicyNotFound
	}

	policy.ID = policyID
	if policy.Document == nil {
		policy.Document = vehicle.Policies[index].Document
	}
	vehicle.Policies[index] = policy

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionPolicies)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Policy updated", map[string]interface{}{
		"plate":     updated.Plate,
		"policy_id": policyID,
	})

	return updated, nil
}

// DeletePolicy removes a policy and best-effort deletes its stored document.
func (s *PolicyService) DeletePolicy(ctx context.Context, plate, policyID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	var removed *domain.InsurancePolicy
	kept := vehicle.Policies[:0]
	for i := range vehicle.Policies {
		if vehicle.Policies[i].ID == policyID {
			// copy before the in-place compaction below reuses this slot
			p := vehicle.Policies[i]
			removed = &p
			continue
		}
		kept = append(kept, vehicle.Policies[i])
	}
	if removed == nil {
		return nil, domain.ErrPolicyNotFound
	}
	vehicle.Policies = kept

	if removed.Document != nil {
		if err := s.fileStore.Delete(ctx, documentKeyFromURL(removed.Document.URL)); err != nil {
			s.logger.Warn("Failed to delete policy document", map[string]interface{}{
				"error":     err.Error(),
				"plate":     vehicle.Plate,
				"policy_id": policyID,
			})
		}
	}

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionPolicies)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Policy deleted", map[string]interface{}{
		"plate":     updated.Plate,
		"policy_id": policyID,
	})

	return updated, nil
}

func (s *PolicyService) uploadDocument(ctx context.Context, plate, policyID string, doc *DocumentUpload, now time.Time) (*domain.PolicyDocument, error) {
	key := documentKey(plate, policyID, doc.Name, now)
	url, err := s.fileStore.Upload(ctx, key, doc.Content, doc.Size, doc.ContentType)
	if err != nil {
		return nil, err
	}
	return &domain.PolicyDocument{
		Name:       doc.Name,
		URL:        url,
		Size:       doc.Size,
		UploadedAt: domain.DateOf(now),
	}, nil
}

// documentKey builds a unique storage path for a policy document, e.g.
// policies/AB123CD/1717236000000_1717236000123.pdf.
func documentKey(plate, policyID, fileName string, now time.Time) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("policies/%s/%s_%d.%s", plate, policyID, now.UnixMilli(), ext)
}

// documentKeyFromURL recovers the storage key from a stored document URL.
func documentKeyFromURL(url string) string {
	if i := strings.Index(url, "/policies/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
