package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
)

func testPolicy(start, end domain.Date) domain.InsurancePolicy {
	return domain.InsurancePolicy{
		Company:      "Generali",
		PolicyNumber: "pol-2024-001",
		Start:        start,
		End:          end,
		AnnualCost:   650,
		Coverages:    []string{"rca", "furto"},
	}
}

func TestAddPolicy(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedVehicle("AB123CD")

	candidate := testPolicy(
		domain.NewDate(2024, time.January, 1),
		domain.NewDate(2024, time.December, 31),
	)

	updated, warning, err := env.policies.AddPolicy(ctx, "AB123CD", candidate, nil)
	if err != nil {
		t.Fatalf("add policy: %v", err)
	}
	if warning != "" {
		t.Errorf("unexpected warning %q", warning)
	}
	if len(updated.Policies) != 1 {
		t.Fatalf("got %d policies, want 1", len(updated.Policies))
	}

	stored := updated.Policies[0]
	if stored.ID == "" {
		t.Error("policy should be assigned an ID")
	}
	if stored.Company != "GENERALI" || stored.PolicyNumber != "POL-2024-001" {
		t.Errorf("policy not normalized: %+v", stored)
	}
	if env.vehicleRepo.lastPatched != domain.CollectionPolicies {
		t.Errorf("patched %q, want policies", env.vehicleRepo.lastPatched)
	}
}

func TestAddPolicyRejectsOverlap(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	vehicle := env.seedVehicle("AB123CD")
	vehicle.Policies = []domain.InsurancePolicy{
		{
			ID:           "1",
			Company:      "GENERALI",
			PolicyNumber: "POL-1",
			Start:        domain.NewDate(2024, time.January, 1),
			End:          domain.NewDate(2024, time.December, 31),
		},
	}

	// Starting on the existing end day still counts as an overlap.
	candidate := testPolicy(
		domain.NewDate(2024, time.December, 31),
		domain.NewDate(2025, time.December, 31),
	)

	_, _, err := env.policies.AddPolicy(ctx, "AB123CD", candidate, nil)
	if !errors.Is(err, domain.ErrPolicyOverlap) {
		t.Errorf("got %v, want ErrPolicyOverlap", err)
	}
	if env.vehicleRepo.patchCount != 0 {
		t.Error("rejected policy must not reach the store")
	}
}

func TestAddPolicyRejectsOversizedDocument(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedVehicle("AB123CD")

	candidate := testPolicy(
		domain.NewDate(2024, time.January, 1),
		domain.NewDate(2024, time.December, 31),
	)
	doc := &DocumentUpload{
		Name:        "policy.pdf",
		Size:        MaxDocumentSize + 1,
		ContentType: "application/pdf",
		Content:     strings.NewReader("x"),
	}

	_, _, err := env.policies.AddPolicy(ctx, "AB123CD", candidate, doc)
	if !errors.Is(err, domain.ErrFileTooLarge) {
		t.Errorf("got %v, want ErrFileTooLarge", err)
	}
	if len(env.fileStore.uploads) != 0 {
		t.Error("oversized document must not be uploaded")
	}
}

func TestAddPolicyWithDocument(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedVehicle("AB123CD")

	content := "pdf bytes"
	candidate := testPolicy(
		domain.NewDate(2024, time.January, 1),
		domain.NewDate(2024, time.December, 31),
	)
	doc := &DocumentUpload{
		Name:        "policy.pdf",
		Size:        int64(len(content)),
		ContentType: "application/pdf",
		Content:     strings.NewReader(content),
	}

	updated, warning, err := env.policies.AddPolicy(ctx, "AB123CD", candidate, doc)
	if err != nil {
		t.Fatalf("add policy: %v", err)
	}
	if warning != "" {
		t.Errorf("unexpected warning %q", warning)
	}

	stored := updated.Policies[0]
	if stored.Document == nil {
		t.Fatal("expected an attached document")
	}
	if stored.Document.Name != "policy.pdf" {
		t.Errorf("document name = %q", stored.Document.Name)
	}
	if !strings.Contains(stored.Document.URL, "policies/AB123CD/") {
		t.Errorf("document URL %q missing the storage prefix", stored.Document.URL)
	}
	if len(env.fileStore.uploads) != 1 {
		t.Errorf("got %d uploads, want 1", len(env.fileStore.uploads))
	}
}

func TestAddPolicyUploadFailureSavesWithoutAttachment(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedVehicle("AB123CD")
	env.fileStore.failUpload = true

	content := "pdf bytes"
	candidate := testPolicy(
		domain.NewDate(2024, time.January, 1),
		domain.NewDate(2024, time.December, 31),
	)
	doc := &DocumentUpload{
		Name:        "policy.pdf",
		Size:        int64(len(content)),
		ContentType: "application/pdf",
		Content:     strings.NewReader(content),
	}

	updated, warning, err := env.policies.AddPolicy(ctx, "AB123CD", candidate, doc)
	if err != nil {
		t.Fatalf("upload failure must not fail the save: %v", err)
	}
	if warning == "" {
		t.Error("expected a degradation warning")
	}
	if len(updated.Policies) != 1 {
		t.Fatalf("got %d policies, want 1", len(updated.Policies))
	}
	if updated.Policies[0].Document != nil {
		t.Error("policy should be saved without the attachment")
	}
}

func TestUpdatePolicyPreservesDocument(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	vehicle := env.seedVehicle("AB123CD")
	vehicle.Policies = []domain.InsurancePolicy{
		{
			ID:           "1",
			Company:      "GENERALI",
			PolicyNumber: "POL-1",
			Start:        domain.NewDate(2024, time.January, 1),
			End:          domain.NewDate(2024, time.December, 31),
			Document: &domain.PolicyDocument{
				Name: "policy.pdf",
				URL:  "https://files.example.com/policies/AB123CD/1_1.pdf",
			},
		},
	}

	edited := testPolicy(
		domain.NewDate(2024, time.January, 1),
		domain.NewDate(2024, time.December, 31),
	)
	edited.AnnualCost = 700

	updated, err := env.policies.UpdatePolicy(ctx, "AB123CD", "1", edited)
	if err != nil {
		t.Fatalf("update policy: %v", err)
	}

	stored := updated.Policies[0]
	if stored.ID != "1" {
		t.Errorf("policy ID changed to %q", stored.ID)
	}
	if stored.AnnualCost != 700 {
		t.Errorf("annual cost = %f, want 700", stored.AnnualCost)
	}
	if stored.Document == nil || stored.Document.Name != "policy.pdf" {
		t.Error("existing document should survive an edit that omits it")
	}
}

func TestUpdatePolicyNotFound(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedVehicle("AB123CD")

	edited := testPolicy(
		domain.NewDate(2024, time.January, 1),
		domain.NewDate(2024, time.December, 31),
	)

	_, err := env.policies.UpdatePolicy(ctx, "AB123CD", "missing", edited)
	if !errors.Is(err, domain.ErrPolicyNotFound) {
		t.Errorf("got %v, want ErrPolicyNotFound", err)
	}
}

func TestDeletePolicyRemovesDocument(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	vehicle := env.seedVehicle("AB123CD")
	vehicle.Policies = []domain.InsurancePolicy{
		{
			ID:           "1",
			Company:      "GENERALI",
			PolicyNumber: "POL-1",
			Start:        domain.NewDate(2024, time.January, 1),
			End:          domain.NewDate(2024, time.December, 31),
			Document: &domain.PolicyDocument{
				Name: "policy.pdf",
				URL:  "https://files.example.com/policies/AB123CD/1_1.pdf",
			},
		},
	}

	updated, err := env.policies.DeletePolicy(ctx, "AB123CD", "1")
	if err != nil {
		t.Fatalf("delete policy: %v", err)
	}
	if len(updated.Policies) != 0 {
		t.Errorf("got %d policies, want 0", len(updated.Policies))
	}
	if len(env.fileStore.deleted) != 1 || env.fileStore.deleted[0] != "policies/AB123CD/1_1.pdf" {
		t.Errorf("deleted keys = %v, want the document key", env.fileStore.deleted)
	}
}

func TestDeletePolicyKeepsSurvivorDocument(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	vehicle := env.seedVehicle("AB123CD")
	vehicle.Policies = []domain.InsurancePolicy{
		{
			ID:           "1",
			Company:      "GENERALI",
			PolicyNumber: "POL-1",
			Start:        domain.NewDate(2023, time.January, 1),
			End:          domain.NewDate(2023, time.December, 31),
			Document: &domain.PolicyDocument{
				Name: "first.pdf",
				URL:  "https://files.example.com/policies/AB123CD/1_1.pdf",
			},
		},
		{
			ID:           "2",
			Company:      "UNIPOL",
			PolicyNumber: "POL-2",
			Start:        domain.NewDate(2024, time.January, 1),
			End:          domain.NewDate(2024, time.December, 31),
			Document: &domain.PolicyDocument{
				Name: "second.pdf",
				URL:  "https://files.example.com/policies/AB123CD/2_2.pdf",
			},
		},
	}

	updated, err := env.policies.DeletePolicy(ctx, "AB123CD", "1")
	if err != nil {
		t.Fatalf("delete policy: %v", err)
	}
	if len(env.fileStore.deleted) != 1 || env.fileStore.deleted[0] != "policies/AB123CD/1_1.pdf" {
		t.Errorf("deleted keys = %v, want [policies/AB123CD/1_1.pdf]", env.fileStore.deleted)
	}
	if len(updated.Policies) != 1 || updated.Policies[0].ID != "2" {
		t.Fatalf("surviving policies = %+v, want only policy 2", updated.Policies)
	}
	doc := updated.Policies[0].Document
	if doc == nil || doc.URL != "https://files.example.com/policies/AB123CD/2_2.pdf" {
		t.Errorf("surviving document = %+v, want second.pdf untouched", doc)
	}
}
