package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/models"
)

// fakeDigitalIDRepo keeps records in a map keyed by user id.
type fakeDigitalIDRepo struct {
	byUser map[uuid.UUID]*models.DigitalID
}

func newFakeDigitalIDRepo() *fakeDigitalIDRepo {
	return &fakeDigitalIDRepo{byUser: make(map[uuid.UUID]*models.DigitalID)}
}

func (f *fakeDigitalIDRepo) CreateDigitalID(ctx context.Context, record *models.DigitalID, accessToken string) (*models.DigitalID, error) {
	f.byUser[record.UserID] = record
	return record, nil
}

func (f *fakeDigitalIDRepo) GetDigitalIDByUser(ctx context.Context, userId uuid.UUID, accessToken string) (*models.DigitalID, error) {
	return f.byUser[userId], nil
}

func (f *fakeDigitalIDRepo) GetDigitalIDByDisplayID(ctx context.Context, displayId string) (*models.DigitalID, error) {
	for _, record := range f.byUser {
		if record.DisplayID == displayId {
			return record, nil
		}
	}
	return nil, nil
}

func (f *fakeDigitalIDRepo) DeleteDigitalID(ctx context.Context, userId uuid.UUID, accessToken string) error {
	delete(f.byUser, userId)
	return nil
}

func validDigitalID() *models.DigitalID {
	return &models.DigitalID{
		FullName:         "Asha Verma",
		IDType:           "passport",
		IDNumber:         "P1234567",
		Address:          "12 MG Road, Bengaluru",
		EmergencyContact: "+91 98765 43210",
	}
}

func TestIssueAndVerifyDigitalID(t *testing.T) {
	repo := newFakeDigitalIDRepo()
	svc := NewDigitalIDService(repo, "test-signing-key")
	userId := uuid.New()

	issued, err := svc.IssueDigitalID(context.Background(), userId, validDigitalID(), "")
	if err != nil {
		t.Fatalf("IssueDigitalID failed: %v", err)
	}

	if !models.IsValidDisplayID(issued.DisplayID) {
		t.Errorf("issued display id %q is malformed", issued.DisplayID)
	}
	if issued.CredentialToken == "" {
		t.Fatal("no credential token issued")
	}

	verified, err := svc.VerifyDigitalID(context.Background(), issued.DisplayID)
	if err != nil {
		t.Fatalf("VerifyDigitalID failed: %v", err)
	}
	if verified.DisplayID != issued.DisplayID {
		t.Errorf("verified wrong record: %s", verified.DisplayID)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	repo := newFakeDigitalIDRepo()
	issuer := NewDigitalIDService(repo, "real-key")
	userId := uuid.New()

	issued, err := issuer.IssueDigitalID(context.Background(), userId, validDigitalID(), "")
	if err != nil {
		t.Fatalf("IssueDigitalID failed: %v", err)
	}

	// A verifier holding a different key must not accept the credential
	imposter := NewDigitalIDService(repo, "other-key")
	if _, err := imposter.VerifyDigitalID(context.Background(), issued.DisplayID); err == nil {
		t.Error("credential signed with a different key was accepted")
	}
}

func TestVerifyRejectsUnknownAndMalformedIDs(t *testing.T) {
	svc := NewDigitalIDService(newFakeDigitalIDRepo(), "key")

	if _, err := svc.VerifyDigitalID(context.Background(), "not-an-id"); err == nil {
		t.Error("malformed id was accepted")
	}
	if _, err := svc.VerifyDigitalID(context.Background(), "IND-20250101-ABC123"); err == nil {
		t.Error("unknown id was accepted")
	}
}

func TestReissueReplacesExistingRecord(t *testing.T) {
	repo := newFakeDigitalIDRepo()
	svc := NewDigitalIDService(repo, "key")
	userId := uuid.New()

	first, err := svc.IssueDigitalID(context.Background(), userId, validDigitalID(), "")
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	second, err := svc.IssueDigitalID(context.Background(), userId, validDigitalID(), "")
	if err != nil {
		t.Fatalf("second issue failed: %v", err)
	}

	if len(repo.byUser) != 1 {
		t.Errorf("user holds %d records, want 1", len(repo.byUser))
	}
	if first.DisplayID == second.DisplayID {
		t.Error("re-issue kept the old display id")
	}
}

func TestIssueRejectsInvalidRecord(t *testing.T) {
	repo := newFakeDigitalIDRepo()
	svc := NewDigitalIDService(repo, "key")

	record := validDigitalID()
	record.IDType = "library_card"

	if _, err := svc.IssueDigitalID(context.Background(), uuid.New(), record, ""); err == nil {
		t.Error("invalid id_type was accepted")
	}
	if len(repo.byUser) != 0 {
		t.Error("invalid record was persisted")
	}
}
